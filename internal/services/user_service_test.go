package services_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newUserFixture(t *testing.T) (*services.UserService, *repositories.MockUserRepository, *repositories.MockOrderRepository, *repositories.MockReviewRepository) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	orderRepo := repositories.NewMockOrderRepository()
	reviewRepo := repositories.NewMockReviewRepository()
	userRepo.AttachSources(orderRepo, reviewRepo)
	return services.NewUserService(userRepo, orderRepo), userRepo, orderRepo, reviewRepo
}

func TestUserService_GetProfile_SortsOrdersDescending(t *testing.T) {
	service, userRepo, orderRepo, _ := newUserFixture(t)

	user := &models.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order so storage order proves nothing
	for _, offset := range []time.Duration{24 * time.Hour, 0, 72 * time.Hour, 48 * time.Hour} {
		assert.NoError(t, orderRepo.Create(&models.Order{
			UserID:       user.ID,
			PurchaseDate: base.Add(offset),
		}))
	}

	profile, err := service.GetProfile(user.ID)
	assert.NoError(t, err)
	assert.Len(t, profile.Orders, 4)
	for i := 1; i < len(profile.Orders); i++ {
		assert.True(t, profile.Orders[i-1].PurchaseDate.After(profile.Orders[i].PurchaseDate),
			"orders must be sorted strictly descending by purchase date")
	}
}

func TestUserService_GetProfile_PopulatesReviewsAndOrders(t *testing.T) {
	service, userRepo, orderRepo, reviewRepo := newUserFixture(t)

	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	productRepo.AttachSources(categoryRepo, reviewRepo)
	orderRepo.AttachSources(productRepo)

	category := &models.Category{ID: "cat-1", Name: "Condiments"}
	assert.NoError(t, categoryRepo.Create(category))
	product := &models.Product{ID: "p-1", Name: "Hot Sauce", Price: decimal.NewFromFloat(5.50), CategoryID: category.ID}
	assert.NoError(t, productRepo.Create(product))

	user := &models.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))

	assert.NoError(t, reviewRepo.Create(&models.Review{
		Rating: 5, ReviewText: "great", UserID: user.ID, ProductID: product.ID,
	}))
	assert.NoError(t, orderRepo.Create(&models.Order{
		UserID:       user.ID,
		PurchaseDate: time.Now(),
		Items:        []models.OrderItem{{Position: 0, ProductID: product.ID, UnitPrice: product.Price}},
	}))

	profile, err := service.GetProfile(user.ID)
	assert.NoError(t, err)
	assert.Len(t, profile.Reviews, 1)
	assert.Len(t, profile.Orders, 1)
	if assert.Len(t, profile.Orders[0].Items, 1) {
		item := profile.Orders[0].Items[0]
		if assert.NotNil(t, item.Product) {
			assert.Equal(t, "Hot Sauce", item.Product.Name)
			if assert.NotNil(t, item.Product.Category) {
				assert.Equal(t, "Condiments", item.Product.Category.Name)
			}
		}
	}
}

func TestUserService_GetOrder_ScopedToOwner(t *testing.T) {
	service, userRepo, orderRepo, _ := newUserFixture(t)

	assert.NoError(t, userRepo.Create(&models.User{ID: "user-1", Username: "alice", Email: "a@example.com", Password: "x"}))
	assert.NoError(t, userRepo.Create(&models.User{ID: "user-2", Username: "bob", Email: "b@example.com", Password: "x"}))

	order := &models.Order{UserID: "user-1", PurchaseDate: time.Now()}
	assert.NoError(t, orderRepo.Create(order))

	// The owner sees their order
	found, err := service.GetOrder("user-1", order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	// Another user's lookup of the same ID is a not-found, not a leak
	_, err = service.GetOrder("user-2", order.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	// Unknown order ID is a not-found for the owner too
	_, err = service.GetOrder("user-1", "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}
