// Package payments wraps the external payment provider behind a small
// interface so the checkout flow can be exercised without network access.
package payments

import "context"

// LineItem is one entry in a payment session: a provider-side price at a
// given quantity.
type LineItem struct {
	PriceID  string
	Quantity int64
}

// Provider is the payment provider surface the checkout flow needs. All
// calls are remote; any error is terminal for the operation that made it.
type Provider interface {
	// CreateProduct registers a provider-side product representation and
	// returns its identifier.
	CreateProduct(ctx context.Context, name, description string, images []string) (string, error)
	// CreatePrice registers a provider-side price for a product. unitAmount
	// is in the currency's minor unit (cents for USD).
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error)
	// CreateSession creates a payment session carrying the line items and
	// returns the session identifier.
	CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error)
}
