package providers

import (
	"context"
	"errors"

	"drop-service/models"
)

// Fulfillment failure classes. All of them are non-fatal to the sale: the
// webhook handler logs and acknowledges regardless, and recovery happens out
// of band.
var (
	// ErrUnavailable means the provider is not configured (no credentials).
	ErrUnavailable = errors.New("fulfillment credentials not configured")

	// ErrRejected means the provider refused the order (validation failure,
	// e.g. a bad address). Retrying the same payload will not help.
	ErrRejected = errors.New("fulfillment order rejected")

	// ErrTransport covers network failures, timeouts and provider 5xx.
	ErrTransport = errors.New("fulfillment transport error")
)

// FulfillmentProvider is the interface every print-on-demand integration must
// implement. The provider is the system of record for its own idempotency;
// orders carry an external reference derived from item and session ids.
type FulfillmentProvider interface {
	// Submit creates a production order and returns the provider's order id.
	Submit(ctx context.Context, order models.FulfillmentOrder) (string, error)

	// Confirm moves a draft order into production.
	Confirm(ctx context.Context, providerOrderID string) error
}
