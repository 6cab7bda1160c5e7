package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"
	mock_interfaces "vizinhanca-ativa/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	sindico   = entities.Actor{ID: "user-sindico", Role: entities.RoleSindico}
	prestador = entities.Actor{ID: "user-prestador", Role: entities.RolePrestador}
)

func openDemand(id, authorID string) entities.Demand {
	return entities.Demand{
		ID:        id,
		Title:     "Reparo de vazamento na garagem",
		Category:  entities.CategoryHidraulica,
		AuthorID:  authorID,
		Status:    entities.DemandStatusAberto,
		CreatedAt: time.Now().UTC(),
	}
}

func TestDemandUseCase_CreateDemand(t *testing.T) {
	t.Run("prestador cannot create", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), prestador, CreateDemandInput{})
		if !errors.Is(err, ErrNotSindico) {
			t.Fatalf("expected ErrNotSindico, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:       "   ",
			Category:    entities.CategoryHidraulica,
			Description: "desc",
		})
		if !errors.Is(err, ErrInvalidDemandTitle) {
			t.Fatalf("expected ErrInvalidDemandTitle, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:    "Reparo",
			Category: entities.CategoryHidraulica,
		})
		if !errors.Is(err, ErrInvalidDemandDescription) {
			t.Fatalf("expected ErrInvalidDemandDescription, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:       "Reparo",
			Category:    "marcenaria",
			Description: "desc",
		})
		if !errors.Is(err, ErrInvalidDemandCategory) {
			t.Fatalf("expected ErrInvalidDemandCategory, got %v", err)
		}
	})

	t.Run("create success with concerns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		analyzer := mock_interfaces.NewMockISafetyAnalyzer(ctrl)
		uc := NewDemandUseCase(repo, nil, analyzer, nil)

		analyzer.EXPECT().Analyze(gomock.Any(), "Vazamento perto do quadro de energia").
			Return([]string{"risco elétrico"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{})).DoAndReturn(
			func(_ context.Context, d entities.Demand) (entities.Demand, error) {
				if d.ID == "" || d.Status != entities.DemandStatusAberto || d.ProposalsCount != 0 {
					t.Fatalf("unexpected demand: %+v", d)
				}
				if len(d.SafetyConcerns) != 1 || d.SafetyConcerns[0] != "risco elétrico" {
					t.Fatalf("unexpected concerns: %v", d.SafetyConcerns)
				}
				if d.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return d, nil
			},
		)

		res, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:       " Reparo de vazamento ",
			Category:    entities.CategoryHidraulica,
			Description: "Vazamento perto do quadro de energia",
			Location:    "Bloco B",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AnalyzerDegraded {
			t.Fatalf("expected no degradation")
		}
		if res.Demand.Title != "Reparo de vazamento" {
			t.Fatalf("expected trimmed title, got %q", res.Demand.Title)
		}
	})

	t.Run("analyzer failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		analyzer := mock_interfaces.NewMockISafetyAnalyzer(ctrl)
		uc := NewDemandUseCase(repo, nil, analyzer, nil)

		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Demand) (entities.Demand, error) {
				if len(d.SafetyConcerns) != 0 {
					t.Fatalf("expected empty concerns, got %v", d.SafetyConcerns)
				}
				return d, nil
			},
		)

		res, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:       "Reparo",
			Category:    entities.CategoryHidraulica,
			Description: "desc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AnalyzerDegraded {
			t.Fatalf("expected degradation warning")
		}
	})

	t.Run("idempotency key becomes id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Demand) (entities.Demand, error) {
				if d.ID != "client-key-1" {
					t.Fatalf("expected idempotency key as id, got %q", d.ID)
				}
				return d, nil
			},
		)

		_, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:          "Reparo",
			Category:       entities.CategoryHidraulica,
			Description:    "desc",
			IdempotencyKey: "client-key-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDemandUseCase_SubmitProposal(t *testing.T) {
	value := decimal.RequireFromString("550.00")

	t.Run("sindico cannot propose", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitProposal(context.Background(), "d-1", sindico, SubmitProposalInput{Message: "m", Value: value})
		if !errors.Is(err, ErrNotPrestador) {
			t.Fatalf("expected ErrNotPrestador, got %v", err)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: " ", Value: value})
		if !errors.Is(err, ErrInvalidProposalMessage) {
			t.Fatalf("expected ErrInvalidProposalMessage, got %v", err)
		}
	})

	t.Run("non-positive value", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: "m", Value: decimal.Zero})
		if !errors.Is(err, ErrInvalidProposalValue) {
			t.Fatalf("expected ErrInvalidProposalValue, got %v", err)
		}
	})

	t.Run("demand missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{}, nil)

		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: "m", Value: value})
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("demand already hired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		d := openDemand("d-1", sindico.ID)
		d.Status = entities.DemandStatusContratado
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: "m", Value: value})
		if !errors.Is(err, ErrDemandHired) {
			t.Fatalf("expected ErrDemandHired, got %v", err)
		}
	})

	t.Run("success snapshots provider identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewDemandUseCase(repo, users, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		users.EXPECT().GetByID(gomock.Any(), prestador.ID).Return(entities.User{
			ID:          prestador.ID,
			FullName:    "João",
			CompanyName: "Hidro Silva ME",
			UserType:    entities.RolePrestador,
			Reputation:  decimal.RequireFromString("4.5"),
		}, nil)
		repo.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.DemandID != "d-1" || p.ProviderName != "Hidro Silva ME" {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if !p.Value.Equal(value) || !p.ProviderReputation.Equal(decimal.RequireFromString("4.5")) {
					t.Fatalf("unexpected decimals: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: "Troco o registro", Value: value})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("lost race against hire maps to ErrDemandHired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{Message: "m", Value: value})
		if !errors.Is(err, ErrDemandHired) {
			t.Fatalf("expected ErrDemandHired, got %v", err)
		}
	})
}

func TestDemandUseCase_HireProvider(t *testing.T) {
	t.Run("requester is not the author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", "someone-else"), nil)

		_, err := uc.HireProvider(context.Background(), "d-1", sindico, "p-1")
		if !errors.Is(err, ErrNotDemandAuthor) {
			t.Fatalf("expected ErrNotDemandAuthor, got %v", err)
		}
	})

	t.Run("hire twice fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		d := openDemand("d-1", sindico.ID)
		d.Status = entities.DemandStatusContratado
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		_, err := uc.HireProvider(context.Background(), "d-1", sindico, "p-1")
		if !errors.Is(err, ErrDemandHired) {
			t.Fatalf("expected ErrDemandHired, got %v", err)
		}
	})

	t.Run("proposal belongs to another demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().GetProposalByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", DemandID: "d-2"}, nil)

		_, err := uc.HireProvider(context.Background(), "d-1", sindico, "p-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success copies proposal fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		value := decimal.RequireFromString("550.00")
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().GetProposalByID(gomock.Any(), "p-1").Return(entities.Proposal{
			ID:           "p-1",
			DemandID:     "d-1",
			ProviderID:   prestador.ID,
			ProviderName: "Hidro Silva ME",
			Value:        value,
		}, nil)
		repo.EXPECT().Hire(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, demandID string, rec entities.HireRecord) (entities.Demand, error) {
				if rec.ProviderID != prestador.ID || !rec.Value.Equal(value) || rec.HiredAt.IsZero() {
					t.Fatalf("unexpected hire record: %+v", rec)
				}
				d := openDemand(demandID, sindico.ID)
				d.Status = entities.DemandStatusContratado
				d.HiredProviderID = rec.ProviderID
				d.HiredProviderName = rec.ProviderName
				d.HiredValue = rec.Value
				d.HiredAt = rec.HiredAt
				return d, nil
			},
		)

		hired, err := uc.HireProvider(context.Background(), "d-1", sindico, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hired.Status != entities.DemandStatusContratado || !hired.HiredValue.Equal(value) {
			t.Fatalf("unexpected result: %+v", hired)
		}
	})

	t.Run("losing the CAS race maps to ErrDemandHired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().GetProposalByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", DemandID: "d-1"}, nil)
		repo.EXPECT().Hire(gomock.Any(), "d-1", gomock.Any()).Return(entities.Demand{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.HireProvider(context.Background(), "d-1", sindico, "p-1")
		if !errors.Is(err, ErrDemandHired) {
			t.Fatalf("expected ErrDemandHired, got %v", err)
		}
	})
}

func TestDemandUseCase_ListProposals(t *testing.T) {
	t.Run("only the author can read proposals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)

		_, err := uc.ListProposals(context.Background(), "d-1", prestador)
		if !errors.Is(err, ErrNotDemandAuthor) {
			t.Fatalf("expected ErrNotDemandAuthor, got %v", err)
		}
	})

	t.Run("author reads proposals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().ListProposalsByDemandID(gomock.Any(), "d-1").Return([]entities.Proposal{{ID: "p-1"}}, nil)

		got, err := uc.ListProposals(context.Background(), "d-1", sindico)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" {
			t.Fatalf("unexpected proposals: %+v", got)
		}
	})
}

func TestDemandUseCase_ListDemands(t *testing.T) {
	t.Run("rejects unknown category filter", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil)
		_, err := uc.ListDemands(context.Background(), interfaces.DemandFilter{Category: "marcenaria"})
		if !errors.Is(err, ErrInvalidDemandCategory) {
			t.Fatalf("expected ErrInvalidDemandCategory, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		filter := interfaces.DemandFilter{OwnerID: sindico.ID, Category: entities.CategoryEletrica}
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Demand{}, nil)

		got, err := uc.ListDemands(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list")
		}
	})
}

func TestDemandUseCase_IdempotentRetries(t *testing.T) {
	t.Run("retried demand create conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Demand{}, interfaces.ErrRecordExists)

		_, err := uc.CreateDemand(context.Background(), sindico, CreateDemandInput{
			Title:          "Reparo",
			Category:       entities.CategoryHidraulica,
			Description:    "desc",
			IdempotencyKey: "client-key-1",
		})
		if !errors.Is(err, ErrDuplicateDemand) {
			t.Fatalf("expected ErrDuplicateDemand, got %v", err)
		}
	})

	t.Run("retried proposal create conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrRecordExists)

		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{
			Message:        "m",
			Value:          decimal.RequireFromString("100.00"),
			IdempotencyKey: "client-key-2",
		})
		if !errors.Is(err, ErrDuplicateProposal) {
			t.Fatalf("expected ErrDuplicateProposal, got %v", err)
		}
	})

	t.Run("demand hired between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(openDemand("d-1", sindico.ID), nil)
		repo.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.SubmitProposal(context.Background(), "d-1", prestador, SubmitProposalInput{
			Message: "m",
			Value:   decimal.RequireFromString("100.00"),
		})
		if !errors.Is(err, ErrDemandHired) {
			t.Fatalf("expected ErrDemandHired, got %v", err)
		}
	})
}
