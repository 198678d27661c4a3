package services

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher publishes domain events. Satisfied by the RabbitMQ client;
// nil disables publishing.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles business logic related to placing orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
	log         *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, events EventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		events:      events,
		log:         log,
	}
}

// PlaceOrder creates a new order for the user from a list of product
// references. Quantity is expressed by repetition: a product appearing twice
// yields two lines. Line order follows the input list, and each line
// snapshots the catalog price at purchase time.
func (s *OrderService) PlaceOrder(userID string, productIDs []string) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(productIDs))
	for i, productID := range productIDs {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", productID, err)
		}
		items = append(items, models.OrderItem{
			Position:  i,
			ProductID: product.ID,
			UnitPrice: product.Price,
		})
	}

	newOrder := &models.Order{
		ID:           uuid.New().String(),
		UserID:       userID,
		PurchaseDate: time.Now(),
		Items:        items,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(newOrder)

	return newOrder, nil
}

// publishOrderCreated emits an order.created event. Publishing is
// best-effort: the order is already committed, so a broker failure is logged
// and never surfaced to the caller.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"order_id":      order.ID,
		"user_id":       order.UserID,
		"purchase_date": order.PurchaseDate,
		"products":      order.ProductIDs(),
	})
	if err != nil {
		s.log.Warn("failed to marshal order created event", zap.Error(err))
		return
	}

	if err := s.events.Publish("order.created", body); err != nil {
		s.log.Warn("failed to publish order created event",
			zap.String("order_id", order.ID), zap.Error(err))
		return
	}
	s.log.Info("published order created event", zap.String("order_id", order.ID))
}
