package handlers

import (
	"errors"
	"net/url"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for creating payment sessions.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
	log      *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest represents the request body for checkout. RequestOrigin is
// the storefront's base URL for the provider's redirects; when absent it is
// derived from the Referer header.
type CheckoutRequest struct {
	Products      []string `json:"products" validate:"required,min=1,dive,required"`
	RequestOrigin string   `json:"request_origin" validate:"omitempty,url"`
}

// HandleCheckout exchanges the cart for a payment session and returns the
// provider's session identifier.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := validateStruct(h.validate, req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	origin := req.RequestOrigin
	if origin == "" {
		origin = refererOrigin(c.Get("Referer"))
	}
	if origin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request origin is required, either in the body or via the Referer header",
		})
	}

	sessionID, err := h.service.CreateSession(c.UserContext(), req.Products, origin)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Checkout references a product that does not exist",
				"error":   err.Error(),
			})
		}
		h.log.Error("checkout failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Could not create checkout session",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session": sessionID,
	})
}

// refererOrigin reduces a Referer URL to its scheme://host origin. Returns
// "" when the header is missing or unparseable.
func refererOrigin(referer string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
