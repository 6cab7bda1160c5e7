package response

import (
	"time"

	"vizinhanca-ativa/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	CompanyName string          `json:"company_name,omitempty"`
	UserType    string          `json:"user_type"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	LogoURL     string          `json:"logo_url,omitempty"`
	Reputation  decimal.Decimal `json:"reputation"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		CompanyName: u.CompanyName,
		UserType:    string(u.UserType),
		Category:    string(u.Category),
		Location:    u.Location,
		Phone:       u.Phone,
		LogoURL:     u.LogoURL,
		Reputation:  u.Reputation,
		CreatedAt:   u.CreatedAt,
	}
}

// ProviderResponse is the public directory view of a provider profile. The
// phone number stays private to the profile owner.
type ProviderResponse struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	LogoURL     string          `json:"logo_url,omitempty"`
	Reputation  decimal.Decimal `json:"reputation"`
}

func FromProvider(u entities.User) ProviderResponse {
	return ProviderResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName(),
		Category:    string(u.Category),
		Location:    u.Location,
		LogoURL:     u.LogoURL,
		Reputation:  u.Reputation,
	}
}

func FromProviders(users []entities.User) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromProvider(u))
	}
	return out
}
