package response

import (
	"time"

	"vizinhanca-ativa/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID                 string          `json:"id"`
	DemandID           string          `json:"demand_id"`
	Message            string          `json:"message"`
	Value              decimal.Decimal `json:"value"`
	ProviderID         string          `json:"provider_id"`
	ProviderName       string          `json:"provider_name"`
	ProviderReputation decimal.Decimal `json:"provider_reputation"`
	CreatedAt          time.Time       `json:"created_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:                 p.ID,
		DemandID:           p.DemandID,
		Message:            p.Message,
		Value:              p.Value,
		ProviderID:         p.ProviderID,
		ProviderName:       p.ProviderName,
		ProviderReputation: p.ProviderReputation,
		CreatedAt:          p.CreatedAt,
	}
}

func FromProposals(proposals []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposal(p))
	}
	return out
}
