package request

import (
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"
)

// UpdateProfileRequest is the self-service profile payload. Role and
// reputation are derived server-side and not accepted from the caller.
type UpdateProfileRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logo_url"`
}

func (r UpdateProfileRequest) ToInput() usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Category:    entities.DemandCategory(r.Category),
		Location:    r.Location,
		Phone:       r.Phone,
		LogoURL:     r.LogoURL,
	}
}
