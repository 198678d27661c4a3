package repositories

import (
	"fmt"
	"strings"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex

	// Optional sources used to populate associations the way the GORM
	// implementation does with preloads.
	categories *MockCategoryRepository
	reviews    *MockReviewRepository
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// AttachSources wires the repositories used to populate category and review
// associations on reads. Either may be nil.
func (r *MockProductRepository) AttachSources(categories *MockCategoryRepository, reviews *MockReviewRepository) {
	r.categories = categories
	r.reviews = reviews
}

// Find returns products matching the filter. The name filter is a
// case-sensitive substring match, mirroring the GORM implementation.
func (r *MockProductRepository) Find(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Name != "" && !strings.Contains(p.Name, filter.Name) {
			continue
		}
		r.populate(&p)
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	r.populate(&product)
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

func (r *MockProductRepository) populate(product *models.Product) {
	if r.categories != nil && product.CategoryID != "" {
		if category, err := r.categories.GetByID(product.CategoryID); err == nil {
			product.Category = category
		}
	}
	if r.reviews != nil {
		if reviews, err := r.reviews.ListByProduct(product.ID); err == nil {
			product.Reviews = reviews
		}
	}
}
