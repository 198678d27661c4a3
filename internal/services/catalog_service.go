package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService handles business logic for browsing the product catalog.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts retrieves products matching the optional filters: category is
// an equality match, name a case-sensitive substring match. No ranking, no
// pagination.
func (s *CatalogService) ListProducts(categoryID, name string) ([]models.Product, error) {
	return s.productRepo.Find(repositories.ProductFilter{
		CategoryID: categoryID,
		Name:       name,
	})
}

// GetProduct retrieves a single product by its ID, with category and reviews
// populated.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// ListCategories retrieves all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateProduct adds a product to the catalog. Used by seeding and admin
// tooling; not exposed on the public API.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// UpdateProduct replaces a catalog product's fields. Admin maintenance; not
// exposed on the public API.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.productRepo.Update(product)
}

// DeleteProduct removes a product from the catalog. Admin maintenance; not
// exposed on the public API.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// CreateCategory adds a category. Used by seeding and admin tooling.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}
