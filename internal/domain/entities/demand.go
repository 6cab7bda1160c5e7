package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandStatus represents the lifecycle of a service demand.
//
// Domain notes:
//   - A demand is created by a síndico and starts as "aberto".
//   - Hiring a provider is a one-time, irreversible transition to "contratado".
//   - There is no reverse transition and no other state.

type DemandStatus string

const (
	DemandStatusAberto     DemandStatus = "aberto"
	DemandStatusContratado DemandStatus = "contratado"
)

// DemandCategory is the fixed set of service categories a demand can have.

type DemandCategory string

const (
	CategoryHidraulica DemandCategory = "hidraulica"
	CategoryEletrica   DemandCategory = "eletrica"
	CategorySeguranca  DemandCategory = "seguranca"
	CategoryPintura    DemandCategory = "pintura"
	CategoryLimpeza    DemandCategory = "limpeza"
	CategoryJardinagem DemandCategory = "jardinagem"
	CategoryOutros     DemandCategory = "outros"
)

// ValidCategory reports whether c belongs to the category enumeration.
func ValidCategory(c DemandCategory) bool {
	switch c {
	case CategoryHidraulica, CategoryEletrica, CategorySeguranca,
		CategoryPintura, CategoryLimpeza, CategoryJardinagem, CategoryOutros:
		return true
	}
	return false
}

// Demand is a service request posted by a síndico.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (author_id-index): author_id, sorted by created_at
//   - GSI2 (entity-index): entity (constant "demand"), sorted by created_at
//   - GSI3 (hired_provider_id-index): hired_provider_id
//
// Invariants:
//   - ProposalsCount always equals the number of proposals owned by this
//     demand; every proposal creation increments it in the same transaction.
//   - Hired* fields are set if and only if Status is "contratado".
type Demand struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Category       DemandCategory `json:"category"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	AuthorID       string         `json:"author_id"`
	Status         DemandStatus   `json:"status"`
	ProposalsCount int            `json:"proposals_count"`
	SafetyConcerns []string       `json:"safety_concerns"`
	CreatedAt      time.Time      `json:"created_at"`

	HiredProviderID   string          `json:"hired_provider_id,omitempty"`
	HiredProviderName string          `json:"hired_provider_name,omitempty"`
	HiredValue        decimal.Decimal `json:"hired_value,omitempty"`
	HiredAt           time.Time       `json:"hired_at,omitempty"`
}

// HireRecord carries the terminal fields written by the hire transition.
type HireRecord struct {
	ProviderID   string
	ProviderName string
	Value        decimal.Decimal
	HiredAt      time.Time
}
