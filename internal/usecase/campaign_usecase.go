package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCampaignNotFound           = errors.New("campaign not found")
	ErrInvalidCampaignID          = errors.New("invalid campaign id")
	ErrInvalidCampaignTitle       = errors.New("invalid campaign title")
	ErrInvalidCampaignGoal        = errors.New("invalid campaign goal")
	ErrInvalidContributionAmount  = errors.New("invalid contribution amount")
	ErrContributionPaymentDenied  = errors.New("contribution payment denied")
	ErrContributionGatewayFailure = errors.New("contribution gateway failure")
)

// CreateCampaignInput carries the caller-provided fields for a new campaign.
type CreateCampaignInput struct {
	Title       string
	Description string
	ImageURL    string
	Goal        decimal.Decimal
}

// ContributeInput carries a provider's contribution. Payment, when non-empty,
// is forwarded to the configured gateway and must be accepted before the
// supporter record is written.
type ContributeInput struct {
	Amount  decimal.Decimal
	Payment json.RawMessage
}

// EnrichedSupporter joins a supporter record with the contributor's public
// profile for the supporters listing.
type EnrichedSupporter struct {
	entities.Supporter
	ProviderName string `json:"provider_name"`
	ProviderLogo string `json:"provider_logo,omitempty"`
}

// ICampaignUseCase is the campaign contribution engine.

type ICampaignUseCase interface {
	CreateCampaign(ctx context.Context, actor entities.Actor, in CreateCampaignInput) (entities.Campaign, error)
	GetCampaign(ctx context.Context, id string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)
	Contribute(ctx context.Context, campaignID string, actor entities.Actor, in ContributeInput) (entities.Supporter, error)
	GetProgress(ctx context.Context, campaignID string) (entities.CampaignProgress, error)
	ListSupporters(ctx context.Context, campaignID string) ([]EnrichedSupporter, error)
}

type CampaignUseCase struct {
	repo    interfaces.ICampaignRepository
	users   interfaces.IUserRepository
	gateway interfaces.IContributionGateway
	log     *zap.Logger
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository, users interfaces.IUserRepository, gateway interfaces.IContributionGateway, log *zap.Logger) *CampaignUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CampaignUseCase{repo: repo, users: users, gateway: gateway, log: log}
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, actor entities.Actor, in CreateCampaignInput) (entities.Campaign, error) {
	if actor.Role != entities.RoleSindico {
		return entities.Campaign{}, ErrNotSindico
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Campaign{}, ErrInvalidCampaignTitle
	}
	if !in.Goal.IsPositive() {
		return entities.Campaign{}, ErrInvalidCampaignGoal
	}

	c := entities.Campaign{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Goal:        in.Goal,
		Current:     decimal.Zero,
		CreatorID:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if c.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	return u.repo.List(ctx)
}

func (u *CampaignUseCase) Contribute(ctx context.Context, campaignID string, actor entities.Actor, in ContributeInput) (entities.Supporter, error) {
	if actor.Role != entities.RolePrestador {
		return entities.Supporter{}, ErrNotPrestador
	}
	if !in.Amount.IsPositive() {
		return entities.Supporter{}, ErrInvalidContributionAmount
	}

	c, err := u.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.Supporter{}, err
	}

	if u.gateway != nil && len(in.Payment) > 0 {
		paymentID, status, _, err := u.gateway.ProcessPayment(ctx, in.Payment)
		if err != nil {
			u.log.Error("contribution payment failed", zap.String("campaign_id", c.ID), zap.Error(err))
			return entities.Supporter{}, ErrContributionGatewayFailure
		}
		if status != "approved" {
			u.log.Warn("contribution payment not approved",
				zap.String("campaign_id", c.ID),
				zap.String("provider_payment_id", paymentID),
				zap.String("status", status),
			)
			return entities.Supporter{}, ErrContributionPaymentDenied
		}
	}

	s := entities.Supporter{
		ID:         uuid.NewString(),
		CampaignID: c.ID,
		ProviderID: actor.ID,
		Amount:     in.Amount,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := u.repo.AddSupporter(ctx, s)
	if err != nil {
		// The campaign existed at the read above; losing the update's
		// attribute_exists condition means it vanished before the write.
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Supporter{}, ErrCampaignNotFound
		}
		return entities.Supporter{}, err
	}
	return created, nil
}

// GetProgress derives the funding state of a campaign. Never stored: the
// percentage and top supporter are recomputed from the repositories on every
// call so stale aggregates cannot exist.
func (u *CampaignUseCase) GetProgress(ctx context.Context, campaignID string) (entities.CampaignProgress, error) {
	c, err := u.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.CampaignProgress{}, err
	}

	supporters, err := u.repo.ListSupportersByCampaignID(ctx, c.ID)
	if err != nil {
		return entities.CampaignProgress{}, err
	}

	progress := entities.CampaignProgress{
		Percent:        progressPercent(c.Current, c.Goal),
		SupporterCount: len(supporters),
		TopSupporter:   topSupporter(supporters),
	}
	return progress, nil
}

// progressPercent computes min(current/goal*100, 100). A zero goal should
// never pass creation, but bad pre-existing data must not divide by zero:
// the campaign counts as fully funded once anything was contributed.
func progressPercent(current, goal decimal.Decimal) float64 {
	if goal.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	pct := current.Div(goal).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	f, _ := pct.Round(1).Float64()
	return f
}

// topSupporter picks the supporter with the highest amount; ties go to the
// earliest contribution.
func topSupporter(supporters []entities.Supporter) *entities.Supporter {
	var top *entities.Supporter
	for i := range supporters {
		s := &supporters[i]
		if top == nil ||
			s.Amount.GreaterThan(top.Amount) ||
			(s.Amount.Equal(top.Amount) && s.CreatedAt.Before(top.CreatedAt)) {
			top = s
		}
	}
	if top == nil {
		return nil
	}
	cp := *top
	return &cp
}

func (u *CampaignUseCase) ListSupporters(ctx context.Context, campaignID string) ([]EnrichedSupporter, error) {
	c, err := u.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	supporters, err := u.repo.ListSupportersByCampaignID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	enriched := make([]EnrichedSupporter, 0, len(supporters))
	for _, s := range supporters {
		e := EnrichedSupporter{Supporter: s, ProviderName: s.ProviderID}
		if u.users != nil {
			if usr, err := u.users.GetByID(ctx, s.ProviderID); err == nil && usr.ID != "" {
				e.ProviderName = usr.DisplayName()
				e.ProviderLogo = usr.LogoURL
			}
		}
		enriched = append(enriched, e)
	}

	// Largest contributions first, as on the supporters page.
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Amount.GreaterThan(enriched[j].Amount)
	})
	return enriched, nil
}
