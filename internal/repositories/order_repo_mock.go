package repositories

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex

	// Optional source used to populate line-item products on reads.
	products *MockProductRepository
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// AttachSources wires the repository used to populate line-item products on
// reads. May be nil.
func (r *MockOrderRepository) AttachSources(products *MockProductRepository) {
	r.products = products
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.PurchaseDate.IsZero() {
		order.PurchaseDate = time.Now()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByUser returns a single order by its ID, scoped to the owning user.
func (r *MockOrderRepository) GetByUser(userID, orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok || order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, ErrNotFound)
	}
	r.populate(&order)
	return &order, nil
}

// ListByUser returns all orders belonging to a user. Map iteration order is
// arbitrary; callers apply their own display sort.
func (r *MockOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		r.populate(&order)
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *MockOrderRepository) populate(order *models.Order) {
	if r.products == nil {
		return
	}
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		if product, err := r.products.GetByID(items[i].ProductID); err == nil {
			items[i].Product = product
		}
	}
	order.Items = items
}
