package response

import (
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"

	"github.com/shopspring/decimal"
)

type CampaignResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url,omitempty"`
	Goal        decimal.Decimal `json:"goal"`
	Current     decimal.Decimal `json:"current"`
	CreatorID   string          `json:"creator_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromCampaign(c entities.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Goal:        c.Goal,
		Current:     c.Current,
		CreatorID:   c.CreatorID,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCampaigns(campaigns []entities.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, FromCampaign(c))
	}
	return out
}

type SupporterResponse struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaign_id"`
	ProviderID string          `json:"provider_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromSupporter(s entities.Supporter) SupporterResponse {
	return SupporterResponse{
		ID:         s.ID,
		CampaignID: s.CampaignID,
		ProviderID: s.ProviderID,
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt,
	}
}

type CampaignProgressResponse struct {
	Percent        float64            `json:"percent"`
	SupporterCount int                `json:"supporter_count"`
	TopSupporter   *SupporterResponse `json:"top_supporter,omitempty"`
}

func FromCampaignProgress(p entities.CampaignProgress) CampaignProgressResponse {
	resp := CampaignProgressResponse{
		Percent:        p.Percent,
		SupporterCount: p.SupporterCount,
	}
	if p.TopSupporter != nil {
		top := FromSupporter(*p.TopSupporter)
		resp.TopSupporter = &top
	}
	return resp
}

type EnrichedSupporterResponse struct {
	SupporterResponse
	ProviderName string `json:"provider_name"`
	ProviderLogo string `json:"provider_logo,omitempty"`
}

func FromEnrichedSupporters(supporters []usecase.EnrichedSupporter) []EnrichedSupporterResponse {
	out := make([]EnrichedSupporterResponse, 0, len(supporters))
	for _, s := range supporters {
		out = append(out, EnrichedSupporterResponse{
			SupporterResponse: FromSupporter(s.Supporter),
			ProviderName:      s.ProviderName,
			ProviderLogo:      s.ProviderLogo,
		})
	}
	return out
}
