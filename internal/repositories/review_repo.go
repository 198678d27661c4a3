package repositories

import "storefront/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListByProduct(productID string) ([]models.Review, error)
	ListByUser(userID string) ([]models.Review, error)
}
