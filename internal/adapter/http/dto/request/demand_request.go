package request

import (
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateDemandRequest is the payload for posting a new demand.
type CreateDemandRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location"`
}

func (r CreateDemandRequest) ToInput(idempotencyKey string) usecase.CreateDemandInput {
	return usecase.CreateDemandInput{
		Title:          r.Title,
		Category:       entities.DemandCategory(r.Category),
		Description:    r.Description,
		Location:       r.Location,
		IdempotencyKey: idempotencyKey,
	}
}

// SubmitProposalRequest is the payload for a provider's bid. Value accepts a
// JSON number or a decimal string and is never parsed through float64.
type SubmitProposalRequest struct {
	Message string          `json:"message" binding:"required"`
	Value   decimal.Decimal `json:"value" binding:"required"`
}

func (r SubmitProposalRequest) ToInput(idempotencyKey string) usecase.SubmitProposalInput {
	return usecase.SubmitProposalInput{
		Message:        r.Message,
		Value:          r.Value,
		IdempotencyKey: idempotencyKey,
	}
}

// HireRequest selects the winning proposal for a demand.
type HireRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
}
