package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a StripeProvider authenticated with the given
// secret API key.
func NewStripeProvider(apiKey string) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProvider{api: api}
}

// CreateProduct registers a Stripe product and returns its ID.
func (p *StripeProvider) CreateProduct(ctx context.Context, name, description string, images []string) (string, error) {
	params := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(name),
	}
	if description != "" {
		params.Description = stripe.String(description)
	}
	if len(images) > 0 {
		params.Images = stripe.StringSlice(images)
	}

	product, err := p.api.Products.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe product: %w", err)
	}
	return product.ID, nil
}

// CreatePrice registers a Stripe price for a product and returns its ID.
func (p *StripeProvider) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error) {
	price, err := p.api.Prices.New(&stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(currency),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stripe price: %w", err)
	}
	return price.ID, nil
}

// CreateSession creates a Stripe checkout session in payment mode and
// returns its ID. The success URL may carry Stripe's own
// {CHECKOUT_SESSION_ID} placeholder.
func (p *StripeProvider) CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	session, err := p.api.CheckoutSessions.New(&stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stripe checkout session: %w", err)
	}
	return session.ID, nil
}
