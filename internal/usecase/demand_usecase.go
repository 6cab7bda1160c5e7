package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrDemandNotFound    = errors.New("demand not found")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrDemandHired       = errors.New("demand already hired")
	ErrDuplicateDemand   = errors.New("demand already exists")
	ErrDuplicateProposal = errors.New("proposal already exists")
	ErrNotDemandAuthor  = errors.New("actor is not the demand author")
	ErrNotSindico       = errors.New("actor is not a sindico")
	ErrNotPrestador     = errors.New("actor is not a prestador")

	ErrInvalidDemandTitle       = errors.New("invalid demand title")
	ErrInvalidDemandDescription = errors.New("invalid demand description")
	ErrInvalidDemandCategory    = errors.New("invalid demand category")
	ErrInvalidDemandID          = errors.New("invalid demand id")
	ErrInvalidProposalID        = errors.New("invalid proposal id")
	ErrInvalidProposalMessage   = errors.New("invalid proposal message")
	ErrInvalidProposalValue     = errors.New("invalid proposal value")
)

// CreateDemandInput carries the caller-provided fields for a new demand.
// IdempotencyKey, when set, becomes the record id so a client retry of the
// same create collapses onto the conditional put instead of duplicating.
type CreateDemandInput struct {
	Title          string
	Category       entities.DemandCategory
	Description    string
	Location       string
	IdempotencyKey string
}

// CreateDemandResult is the outcome of CreateDemand. AnalyzerDegraded is set
// when the safety analyzer failed and the demand was created with an empty
// concerns list; the warning must reach the caller.
type CreateDemandResult struct {
	Demand           entities.Demand
	AnalyzerDegraded bool
}

// SubmitProposalInput carries a provider's bid against an open demand.
type SubmitProposalInput struct {
	Message        string
	Value          decimal.Decimal
	IdempotencyKey string
}

// IDemandUseCase is the demand lifecycle engine: creation, proposal
// submission and the one-time hire transition.

type IDemandUseCase interface {
	CreateDemand(ctx context.Context, actor entities.Actor, in CreateDemandInput) (CreateDemandResult, error)
	GetDemand(ctx context.Context, id string) (entities.Demand, error)
	ListDemands(ctx context.Context, filter interfaces.DemandFilter) ([]entities.Demand, error)
	SubmitProposal(ctx context.Context, demandID string, actor entities.Actor, in SubmitProposalInput) (entities.Proposal, error)
	ListProposals(ctx context.Context, demandID string, actor entities.Actor) ([]entities.Proposal, error)
	HireProvider(ctx context.Context, demandID string, actor entities.Actor, proposalID string) (entities.Demand, error)
}

type DemandUseCase struct {
	repo     interfaces.IDemandRepository
	users    interfaces.IUserRepository
	analyzer interfaces.ISafetyAnalyzer
	log      *zap.Logger
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(repo interfaces.IDemandRepository, users interfaces.IUserRepository, analyzer interfaces.ISafetyAnalyzer, log *zap.Logger) *DemandUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DemandUseCase{repo: repo, users: users, analyzer: analyzer, log: log}
}

func (u *DemandUseCase) CreateDemand(ctx context.Context, actor entities.Actor, in CreateDemandInput) (CreateDemandResult, error) {
	if actor.Role != entities.RoleSindico {
		return CreateDemandResult{}, ErrNotSindico
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return CreateDemandResult{}, ErrInvalidDemandTitle
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return CreateDemandResult{}, ErrInvalidDemandDescription
	}
	if !entities.ValidCategory(in.Category) {
		return CreateDemandResult{}, ErrInvalidDemandCategory
	}

	concerns, degraded := u.analyzeDescription(ctx, description)

	id := strings.TrimSpace(in.IdempotencyKey)
	if id == "" {
		id = uuid.NewString()
	}

	d := entities.Demand{
		ID:             id,
		Title:          title,
		Category:       in.Category,
		Description:    description,
		Location:       strings.TrimSpace(in.Location),
		AuthorID:       actor.ID,
		Status:         entities.DemandStatusAberto,
		ProposalsCount: 0,
		SafetyConcerns: concerns,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		// The conditional put only loses when the id was already written,
		// i.e. a client retried the create with the same Idempotency-Key.
		if errors.Is(err, interfaces.ErrRecordExists) {
			return CreateDemandResult{}, ErrDuplicateDemand
		}
		return CreateDemandResult{}, err
	}
	return CreateDemandResult{Demand: created, AnalyzerDegraded: degraded}, nil
}

// analyzeDescription runs the safety analyzer. Analyzer failure is a
// non-fatal dependency error: the demand is created with no concerns and the
// degradation is surfaced to the caller.
func (u *DemandUseCase) analyzeDescription(ctx context.Context, description string) (concerns []string, degraded bool) {
	if u.analyzer == nil {
		return []string{}, false
	}
	concerns, err := u.analyzer.Analyze(ctx, description)
	if err != nil {
		u.log.Warn("safety analysis degraded", zap.Error(err))
		return []string{}, true
	}
	if concerns == nil {
		concerns = []string{}
	}
	return concerns, false
}

func (u *DemandUseCase) GetDemand(ctx context.Context, id string) (entities.Demand, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Demand{}, ErrInvalidDemandID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}
	return d, nil
}

func (u *DemandUseCase) ListDemands(ctx context.Context, filter interfaces.DemandFilter) ([]entities.Demand, error) {
	if filter.Category != "" && !entities.ValidCategory(filter.Category) {
		return nil, ErrInvalidDemandCategory
	}
	return u.repo.List(ctx, filter)
}

func (u *DemandUseCase) SubmitProposal(ctx context.Context, demandID string, actor entities.Actor, in SubmitProposalInput) (entities.Proposal, error) {
	if actor.Role != entities.RolePrestador {
		return entities.Proposal{}, ErrNotPrestador
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return entities.Proposal{}, ErrInvalidProposalMessage
	}
	if !in.Value.IsPositive() {
		return entities.Proposal{}, ErrInvalidProposalValue
	}

	d, err := u.GetDemand(ctx, demandID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if d.Status != entities.DemandStatusAberto {
		return entities.Proposal{}, ErrDemandHired
	}

	name, reputation := u.providerIdentity(ctx, actor.ID)

	id := strings.TrimSpace(in.IdempotencyKey)
	if id == "" {
		id = uuid.NewString()
	}

	p := entities.Proposal{
		ID:                 id,
		DemandID:           d.ID,
		Message:            message,
		Value:              in.Value,
		ProviderID:         actor.ID,
		ProviderName:       name,
		ProviderReputation: reputation,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := u.repo.CreateProposal(ctx, p)
	if err != nil {
		switch {
		// The put conditions on the proposal id being new; losing it means a
		// retried Idempotency-Key.
		case errors.Is(err, interfaces.ErrRecordExists):
			return entities.Proposal{}, ErrDuplicateProposal
		// The companion update conditions on status "aberto"; losing it
		// means the demand was hired between the read above and the write.
		case errors.Is(err, interfaces.ErrConditionalCheckFailed):
			return entities.Proposal{}, ErrDemandHired
		}
		return entities.Proposal{}, err
	}
	return created, nil
}

// providerIdentity resolves the display name and reputation snapshotted onto
// a proposal. A missing profile is tolerated: the proposal falls back to the
// actor id and zero reputation.
func (u *DemandUseCase) providerIdentity(ctx context.Context, providerID string) (string, decimal.Decimal) {
	if u.users == nil {
		return providerID, decimal.Zero
	}
	usr, err := u.users.GetByID(ctx, providerID)
	if err != nil || usr.ID == "" {
		if err != nil {
			u.log.Warn("provider profile lookup failed", zap.String("provider_id", providerID), zap.Error(err))
		}
		return providerID, decimal.Zero
	}
	return usr.DisplayName(), usr.Reputation
}

func (u *DemandUseCase) ListProposals(ctx context.Context, demandID string, actor entities.Actor) ([]entities.Proposal, error) {
	d, err := u.GetDemand(ctx, demandID)
	if err != nil {
		return nil, err
	}
	if d.AuthorID != actor.ID {
		return nil, ErrNotDemandAuthor
	}
	return u.repo.ListProposalsByDemandID(ctx, d.ID)
}

func (u *DemandUseCase) HireProvider(ctx context.Context, demandID string, actor entities.Actor, proposalID string) (entities.Demand, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Demand{}, ErrInvalidProposalID
	}

	d, err := u.GetDemand(ctx, demandID)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.AuthorID != actor.ID {
		return entities.Demand{}, ErrNotDemandAuthor
	}
	if d.Status != entities.DemandStatusAberto {
		return entities.Demand{}, ErrDemandHired
	}

	p, err := u.repo.GetProposalByID(ctx, proposalID)
	if err != nil {
		return entities.Demand{}, err
	}
	if p.ID == "" || p.DemandID != d.ID {
		return entities.Demand{}, ErrProposalNotFound
	}

	hired, err := u.repo.Hire(ctx, d.ID, entities.HireRecord{
		ProviderID:   p.ProviderID,
		ProviderName: p.ProviderName,
		Value:        p.Value,
		HiredAt:      time.Now().UTC(),
	})
	if err != nil {
		// The compare-and-swap on status serializes concurrent hires: exactly
		// one caller wins, the rest land here.
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Demand{}, ErrDemandHired
		}
		return entities.Demand{}, err
	}

	u.log.Info("demand hired",
		zap.String("demand_id", hired.ID),
		zap.String("provider_id", p.ProviderID),
		zap.String("value", p.Value.String()),
	)
	return hired, nil
}
