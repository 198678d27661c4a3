package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// owned by a single user, so every lookup is scoped by user ID; asking for
// another user's order yields ErrNotFound. Reads return orders with their
// line items and the referenced products (with categories) populated, line
// items in cart order.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUser(userID, orderID string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
}
