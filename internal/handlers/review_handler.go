package handlers

import (
	"errors"

	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReviewHandler handles HTTP requests for submitting reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
	log      *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the review routes with the Fiber app. auth must
// be the identity-gate middleware.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/reviews", auth, h.HandleAddReview)
}

// AddReviewRequest represents the request body for submitting a review.
// UserID is optional; when present it must match the authenticated identity.
type AddReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required,max=2000"`
	UserID     string `json:"user_id" validate:"omitempty,uuid"`
	ProductID  string `json:"product_id" validate:"required"`
}

// HandleAddReview creates a review authored by the current user and attached
// to the named product.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	var req AddReviewRequest
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

	userID := middleware.UserID(c)
	if req.UserID != "" && req.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Cannot submit a review on behalf of another user",
		})
	}

	review, err := h.service.AddReview(req.Rating, req.ReviewText, userID, req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review target not found",
				"error":   err.Error(),
			})
		}
		h.log.Error("failed to add review",
			zap.String("user_id", userID), zap.String("product_id", req.ProductID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
