package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is a provider's bid against a demand. Proposals are immutable once
// created and remain readable as historical records after the demand is hired.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (demand_id-index): demand_id, sorted by created_at
//   - GSI2 (provider_id-index): provider_id
type Proposal struct {
	ID                 string          `json:"id"`
	DemandID           string          `json:"demand_id"`
	Message            string          `json:"message"`
	Value              decimal.Decimal `json:"value"`
	ProviderID         string          `json:"provider_id"`
	ProviderName       string          `json:"provider_name"`
	ProviderReputation decimal.Decimal `json:"provider_reputation"`
	CreatedAt          time.Time       `json:"created_at"`
}
