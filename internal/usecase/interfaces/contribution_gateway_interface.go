package interfaces

import (
	"context"
	"encoding/json"
)

// IContributionGateway abstracts external payment providers (e.g. Mercado
// Pago) for campaign contributions.
//
// When a gateway is configured, a contribution is charged through it before
// the supporter record is persisted; the provider response payload is kept
// for traceability.
type IContributionGateway interface {
	ProcessPayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
