package response

import (
	"time"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"

	"github.com/shopspring/decimal"
)

type DemandResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	AuthorID       string    `json:"author_id"`
	Status         string    `json:"status"`
	ProposalsCount int       `json:"proposals_count"`
	SafetyConcerns []string  `json:"safety_concerns"`
	CreatedAt      time.Time `json:"created_at"`

	HiredProviderID   string           `json:"hired_provider_id,omitempty"`
	HiredProviderName string           `json:"hired_provider_name,omitempty"`
	HiredValue        *decimal.Decimal `json:"hired_value,omitempty"`
	HiredAt           *time.Time       `json:"hired_at,omitempty"`
}

func FromDemand(d entities.Demand) DemandResponse {
	resp := DemandResponse{
		ID:             d.ID,
		Title:          d.Title,
		Category:       string(d.Category),
		Description:    d.Description,
		Location:       d.Location,
		AuthorID:       d.AuthorID,
		Status:         string(d.Status),
		ProposalsCount: d.ProposalsCount,
		SafetyConcerns: d.SafetyConcerns,
		CreatedAt:      d.CreatedAt,
	}
	if resp.SafetyConcerns == nil {
		resp.SafetyConcerns = []string{}
	}
	if d.Status == entities.DemandStatusContratado {
		hiredValue := d.HiredValue
		hiredAt := d.HiredAt
		resp.HiredProviderID = d.HiredProviderID
		resp.HiredProviderName = d.HiredProviderName
		resp.HiredValue = &hiredValue
		resp.HiredAt = &hiredAt
	}
	return resp
}

func FromDemands(demands []entities.Demand) []DemandResponse {
	out := make([]DemandResponse, 0, len(demands))
	for _, d := range demands {
		out = append(out, FromDemand(d))
	}
	return out
}

// CreateDemandResponse adds the degradation warning to the created demand.
// Warnings is present only when the safety analyzer was unavailable and the
// demand went through without concerns.
type CreateDemandResponse struct {
	DemandResponse
	Warnings []string `json:"warnings,omitempty"`
}

func FromCreateDemandResult(r usecase.CreateDemandResult) CreateDemandResponse {
	resp := CreateDemandResponse{DemandResponse: FromDemand(r.Demand)}
	if r.AnalyzerDegraded {
		resp.Warnings = []string{"safety_analysis_unavailable"}
	}
	return resp
}
