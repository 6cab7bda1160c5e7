package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	mock_interfaces "vizinhanca-ativa/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestUserUseCase_UpdateProfile(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		_, err := uc.UpdateProfile(context.Background(), prestador, UpdateProfileInput{FullName: "   "})
		if !errors.Is(err, ErrInvalidUserName) {
			t.Fatalf("expected ErrInvalidUserName, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		_, err := uc.UpdateProfile(context.Background(), prestador, UpdateProfileInput{FullName: "João", Category: "nope"})
		if !errors.Is(err, ErrInvalidDemandCategory) {
			t.Fatalf("expected ErrInvalidDemandCategory, got %v", err)
		}
	})

	t.Run("preserves reputation and created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		createdAt := time.Now().UTC().Add(-24 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), prestador.ID).Return(entities.User{
			ID:         prestador.ID,
			FullName:   "João",
			UserType:   entities.RolePrestador,
			Reputation: decimal.RequireFromString("4.8"),
			CreatedAt:  createdAt,
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Reputation.Equal(decimal.RequireFromString("4.8")) {
					t.Fatalf("reputation not preserved: %v", u.Reputation)
				}
				if !u.CreatedAt.Equal(createdAt) {
					t.Fatalf("created at not preserved: %v", u.CreatedAt)
				}
				if u.UserType != entities.RolePrestador {
					t.Fatalf("role should come from the actor, got %s", u.UserType)
				}
				return u, nil
			})

		got, err := uc.UpdateProfile(context.Background(), prestador, UpdateProfileInput{
			FullName:    "João Silva",
			CompanyName: "Hidro Silva",
			Category:    entities.CategoryHidraulica,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FullName != "João Silva" || got.CompanyName != "Hidro Silva" {
			t.Fatalf("unexpected profile: %+v", got)
		}
	})

	t.Run("first write sets created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), prestador.ID).Return(entities.User{}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.CreatedAt.IsZero() {
					t.Fatal("created at should be set on first write")
				}
				return u, nil
			})

		if _, err := uc.UpdateProfile(context.Background(), prestador, UpdateProfileInput{FullName: "João"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Providers(t *testing.T) {
	t.Run("category filter applies in memory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().ListByType(gomock.Any(), entities.RolePrestador).Return([]entities.User{
			{ID: "u-1", Category: entities.CategoryHidraulica},
			{ID: "u-2", Category: entities.CategoryPintura},
		}, nil)

		got, err := uc.ListProviders(context.Background(), entities.CategoryHidraulica)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "u-1" {
			t.Fatalf("unexpected providers: %+v", got)
		}
	})

	t.Run("sindico is not a provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", UserType: entities.RoleSindico}, nil)

		_, err := uc.GetProvider(context.Background(), "u-1")
		if !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})

	t.Run("missing profile maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), prestador.ID).Return(entities.User{}, nil)

		_, err := uc.GetProfile(context.Background(), prestador)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
