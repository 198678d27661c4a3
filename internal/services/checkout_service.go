package services

import (
	"context"
	"fmt"

	"storefront/internal/repositories"
	"storefront/pkg/payments"

	"go.uber.org/zap"
)

const checkoutCurrency = "usd"

// CheckoutService exchanges a cart for a payment session with the external
// payment provider. It writes no local state: on any provider failure the
// whole operation fails with nothing to roll back.
type CheckoutService struct {
	productRepo repositories.ProductRepository
	provider    payments.Provider
	log         *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(productRepo repositories.ProductRepository, provider payments.Provider, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		provider:    provider,
		log:         log,
	}
}

// CreateSession resolves each cart product, registers a provider-side
// product and price for it, and creates one payment session carrying one
// quantity-1 line item per cart entry. A product appearing twice in the cart
// produces two line items, not one line item of quantity 2. Provider calls
// run sequentially in cart order.
//
// origin is the storefront's base URL; the provider redirects there after
// payment, substituting its own session-id placeholder into the success URL.
func (s *CheckoutService) CreateSession(ctx context.Context, productIDs []string, origin string) (string, error) {
	lineItems := make([]payments.LineItem, 0, len(productIDs))

	for _, productID := range productIDs {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return "", fmt.Errorf("product %s: %w", productID, err)
		}

		providerProductID, err := s.provider.CreateProduct(ctx, product.Name, product.Description,
			[]string{fmt.Sprintf("%s/images/%s", origin, product.Image)})
		if err != nil {
			return "", fmt.Errorf("failed to register product %s with provider: %w", product.ID, err)
		}

		// Catalog prices are in major units; the provider wants minor units
		// (cents), truncated.
		unitAmount := product.Price.Shift(2).IntPart()

		priceID, err := s.provider.CreatePrice(ctx, providerProductID, unitAmount, checkoutCurrency)
		if err != nil {
			return "", fmt.Errorf("failed to register price for product %s with provider: %w", product.ID, err)
		}

		lineItems = append(lineItems, payments.LineItem{
			PriceID:  priceID,
			Quantity: 1,
		})
	}

	sessionID, err := s.provider.CreateSession(ctx, lineItems,
		fmt.Sprintf("%s/success?session_id={CHECKOUT_SESSION_ID}", origin),
		fmt.Sprintf("%s/", origin),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.log.Info("created checkout session",
		zap.String("session_id", sessionID), zap.Int("line_items", len(lineItems)))

	return sessionID, nil
}
