package request

import (
	"encoding/json"

	"vizinhanca-ativa/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateCampaignRequest is the payload for opening a fundraising campaign.
type CreateCampaignRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Goal        decimal.Decimal `json:"goal" binding:"required"`
}

func (r CreateCampaignRequest) ToInput() usecase.CreateCampaignInput {
	return usecase.CreateCampaignInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Goal:        r.Goal,
	}
}

// ContributeRequest is the payload for supporting a campaign. Payment, when
// present, is passed through verbatim to the payment gateway.
type ContributeRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Payment json.RawMessage `json:"payment,omitempty"`
}

func (r ContributeRequest) ToInput() usecase.ContributeInput {
	return usecase.ContributeInput{
		Amount:  r.Amount,
		Payment: r.Payment,
	}
}
