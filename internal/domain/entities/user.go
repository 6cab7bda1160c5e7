package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole distinguishes the two marketplace roles.

type UserRole string

const (
	RoleSindico   UserRole = "sindico"
	RolePrestador UserRole = "prestador"
)

// Actor is the authenticated caller of an operation, as resolved by the
// identity middleware. Authorization checks happen once at the usecase
// boundary against this value, never ad hoc deeper in.
type Actor struct {
	ID   string
	Role UserRole
}

// User is a profile record from the identity & profile store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_type-index): user_type
//
// The lifecycle engines consume this store read-only; only the profile
// endpoints write to it.
type User struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	CompanyName string          `json:"company_name,omitempty"`
	UserType    UserRole        `json:"user_type"`
	Category    DemandCategory  `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	LogoURL     string          `json:"logo_url,omitempty"`
	Reputation  decimal.Decimal `json:"reputation"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DisplayName is the name shown to other users: the company name when the
// profile has one, otherwise the full name.
func (u User) DisplayName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}
	return u.FullName
}
