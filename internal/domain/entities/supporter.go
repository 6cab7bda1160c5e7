package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supporter is a single contribution record against a campaign. Immutable.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (campaign_id-index): campaign_id, sorted by created_at
//   - GSI2 (provider_id-index): provider_id
type Supporter struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaign_id"`
	ProviderID string          `json:"provider_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
