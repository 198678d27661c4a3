package repositories

import (
	"storefront/internal/models"
)

// ProductFilter narrows a product listing. CategoryID is an equality match,
// Name a case-sensitive substring match. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
	Name       string
}

// ProductRepository defines the interface for product data access. Reads
// return products with their category and reviews populated.
type ProductRepository interface {
	Find(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
