package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access. GetProfile
// returns the user with their review set and order history populated
// (orders with line items, products, and product categories); the other
// getters return the bare record.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetProfile(id string) (*models.User, error)
}
