package services_test

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newCatalogFixture(t *testing.T) (*services.CatalogService, *repositories.MockProductRepository, *repositories.MockCategoryRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	productRepo.AttachSources(categoryRepo, nil)
	return services.NewCatalogService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestCatalogService_ListProducts_Filters(t *testing.T) {
	catalog, productRepo, categoryRepo := newCatalogFixture(t)

	condiments := &models.Category{ID: "cat-1", Name: "Condiments"}
	snacks := &models.Category{ID: "cat-2", Name: "Snacks"}
	assert.NoError(t, categoryRepo.Create(condiments))
	assert.NoError(t, categoryRepo.Create(snacks))

	seed := []models.Product{
		{ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(5.50), CategoryID: condiments.ID},
		{ID: "p-2", Name: "Soy sauce", Price: decimal.NewFromFloat(4.25), CategoryID: condiments.ID},
		{ID: "p-3", Name: "Tortilla Chips", Price: decimal.NewFromFloat(3.75), CategoryID: snacks.ID},
	}
	for i := range seed {
		assert.NoError(t, productRepo.Create(&seed[i]))
	}

	// No filters returns everything
	all, err := catalog.ListProducts("", "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	// Category filter is an equality match
	inCondiments, err := catalog.ListProducts(condiments.ID, "")
	assert.NoError(t, err)
	assert.Len(t, inCondiments, 2)
	for _, p := range inCondiments {
		assert.Equal(t, condiments.ID, p.CategoryID)
	}

	// Name filter is a case-sensitive substring match: "sauce" matches only
	// the lowercase spelling, "Sauce" only the capitalized one.
	lower, err := catalog.ListProducts("", "sauce")
	assert.NoError(t, err)
	assert.Len(t, lower, 1)
	assert.Equal(t, "Soy sauce", lower[0].Name)

	upper, err := catalog.ListProducts("", "Sauce")
	assert.NoError(t, err)
	assert.Len(t, upper, 1)
	assert.Equal(t, "Hot Sauce", upper[0].Name)

	// Both filters combine
	none, err := catalog.ListProducts(snacks.ID, "sauce")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogService_GetProduct(t *testing.T) {
	catalog, productRepo, categoryRepo := newCatalogFixture(t)

	category := &models.Category{ID: "cat-1", Name: "Condiments"}
	assert.NoError(t, categoryRepo.Create(category))
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(5.50), CategoryID: category.ID,
	}))

	// Found, with category populated
	product, err := catalog.GetProduct("p-1")
	assert.NoError(t, err)
	assert.Equal(t, "Hot Sauce", product.Name)
	if assert.NotNil(t, product.Category) {
		assert.Equal(t, "Condiments", product.Category.Name)
	}

	// Missing product surfaces the not-found sentinel
	_, err = catalog.GetProduct("p-99")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	catalog, productRepo, categoryRepo := newCatalogFixture(t)

	category := &models.Category{ID: "cat-1", Name: "Condiments"}
	assert.NoError(t, categoryRepo.Create(category))
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(5.50), CategoryID: category.ID,
	}))

	updated := &models.Product{
		ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(6.00), CategoryID: category.ID,
	}
	assert.NoError(t, catalog.UpdateProduct(updated))

	product, err := catalog.GetProduct("p-1")
	assert.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(6.00)))

	// Updating a product that does not exist is a not-found, never an insert.
	err = catalog.UpdateProduct(&models.Product{ID: "p-99", Name: "Ghost Pepper Paste"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	_, err = catalog.GetProduct("p-99")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	catalog, productRepo, _ := newCatalogFixture(t)

	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(5.50),
	}))

	assert.NoError(t, catalog.DeleteProduct("p-1"))

	_, err := catalog.GetProduct("p-1")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	// Deleting again reports not-found.
	err = catalog.DeleteProduct("p-1")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestCatalogService_ListCategories(t *testing.T) {
	catalog, _, categoryRepo := newCatalogFixture(t)

	assert.NoError(t, categoryRepo.Create(&models.Category{ID: "cat-1", Name: "Condiments"}))
	assert.NoError(t, categoryRepo.Create(&models.Category{ID: "cat-2", Name: "Snacks"}))

	categories, err := catalog.ListCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
}
