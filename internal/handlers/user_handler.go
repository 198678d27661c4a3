package handlers

import (
	"errors"

	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for the current user's profile and
// order history. All routes require a resolved identity.
type UserHandler struct {
	service *services.UserService
	log     *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. auth must be
// the identity-gate middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/users", auth)
	userRoutes.Get("/me", h.HandleGetProfile)
	userRoutes.Get("/me/orders/:id", h.HandleGetOrder)
}

// HandleGetProfile returns the current user with reviews and order history
// populated, orders most recent first.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	user, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		h.log.Error("failed to get profile", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleGetOrder returns a single order from the current user's own history.
// An order belonging to another user is indistinguishable from a missing one.
func (h *UserHandler) HandleGetOrder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	orderID := c.Params("id")
	order, err := h.service.GetOrder(userID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		h.log.Error("failed to get order",
			zap.String("user_id", userID), zap.String("order_id", orderID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
