package interfaces

import (
	"context"

	"vizinhanca-ativa/internal/domain/entities"
)

// DemandFilter narrows demand listings. Empty fields are ignored; set fields
// combine as a conjunction.
type DemandFilter struct {
	OwnerID  string
	Category entities.DemandCategory
}

// IDemandRepository abstracts DynamoDB persistence for demands and the
// proposals they own.
//
// The lifecycle engine needs exactly five store primitives: get-by-id,
// ordered query, atomic counter increment, atomic conditional update and
// create-with-condition. CreateProposal and Hire must be atomic:
//   - CreateProposal writes the proposal and increments the parent's
//     proposals_count in one transaction, conditioned on status "aberto".
//   - Hire is a compare-and-swap on status; a concurrent hire that loses the
//     race gets ErrConditionalCheckFailed.
//   - Create and CreateProposal are create-once: a taken id gets
//     ErrRecordExists.
type IDemandRepository interface {
	Create(ctx context.Context, d entities.Demand) (entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	List(ctx context.Context, filter DemandFilter) ([]entities.Demand, error)
	ListByHiredProviderID(ctx context.Context, providerID string) ([]entities.Demand, error)
	Hire(ctx context.Context, demandID string, rec entities.HireRecord) (entities.Demand, error)

	CreateProposal(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetProposalByID(ctx context.Context, id string) (entities.Proposal, error)
	ListProposalsByDemandID(ctx context.Context, demandID string) ([]entities.Proposal, error)
	ListProposalsByProviderID(ctx context.Context, providerID string) ([]entities.Proposal, error)
}
