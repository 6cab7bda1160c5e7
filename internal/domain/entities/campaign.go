package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is a sustainability fundraising initiative created by a síndico.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity-index): entity (constant "campaign"), sorted by created_at
//
// Invariant: Current equals the sum of all supporter amounts. It is only ever
// changed by the same transaction that records a supporter contribution, so
// it never drifts from the owned collection.
type Campaign struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Goal        decimal.Decimal `json:"goal"`
	Current     decimal.Decimal `json:"current"`
	CreatorID   string          `json:"creator_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CampaignProgress is a derived, read-only view of a campaign's funding state.
// It is computed on demand and never stored.
type CampaignProgress struct {
	Percent        float64    `json:"percent"`
	SupporterCount int        `json:"supporter_count"`
	TopSupporter   *Supporter `json:"top_supporter,omitempty"`
}
