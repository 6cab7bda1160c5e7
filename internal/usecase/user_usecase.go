package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrInvalidUserName  = errors.New("invalid user name")
)

// UpdateProfileInput carries the self-service profile fields. Role and
// reputation are not caller-writable.
type UpdateProfileInput struct {
	FullName    string
	CompanyName string
	Category    entities.DemandCategory
	Location    string
	Phone       string
	LogoURL     string
}

// IUserUseCase exposes the profile endpoints and the provider directory.

type IUserUseCase interface {
	GetProfile(ctx context.Context, actor entities.Actor) (entities.User, error)
	UpdateProfile(ctx context.Context, actor entities.Actor, in UpdateProfileInput) (entities.User, error)
	ListProviders(ctx context.Context, category entities.DemandCategory) ([]entities.User, error)
	GetProvider(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) GetProfile(ctx context.Context, actor entities.Actor) (entities.User, error) {
	usr, err := u.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, actor entities.Actor, in UpdateProfileInput) (entities.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return entities.User{}, ErrInvalidUserName
	}
	if in.Category != "" && !entities.ValidCategory(in.Category) {
		return entities.User{}, ErrInvalidDemandCategory
	}

	existing, err := u.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return entities.User{}, err
	}

	usr := entities.User{
		ID:          actor.ID,
		FullName:    fullName,
		CompanyName: strings.TrimSpace(in.CompanyName),
		UserType:    actor.Role,
		Category:    in.Category,
		Location:    strings.TrimSpace(in.Location),
		Phone:       strings.TrimSpace(in.Phone),
		LogoURL:     strings.TrimSpace(in.LogoURL),
		Reputation:  existing.Reputation,
		CreatedAt:   existing.CreatedAt,
	}
	if usr.CreatedAt.IsZero() {
		usr.CreatedAt = time.Now().UTC()
	}
	if usr.Reputation.LessThan(decimal.Zero) {
		usr.Reputation = decimal.Zero
	}

	return u.repo.Upsert(ctx, usr)
}

func (u *UserUseCase) ListProviders(ctx context.Context, category entities.DemandCategory) ([]entities.User, error) {
	if category != "" && !entities.ValidCategory(category) {
		return nil, ErrInvalidDemandCategory
	}

	providers, err := u.repo.ListByType(ctx, entities.RolePrestador)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return providers, nil
	}

	filtered := make([]entities.User, 0, len(providers))
	for _, p := range providers {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *UserUseCase) GetProvider(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrProviderNotFound
	}
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" || usr.UserType != entities.RolePrestador {
		return entities.User{}, ErrProviderNotFound
	}
	return usr, nil
}
