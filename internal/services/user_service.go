package services

import (
	"sort"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// UserService handles business logic for user profiles and order history.
type UserService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// GetProfile retrieves the user with their reviews and order history
// populated. Orders are sorted most recent first; storage order is insertion
// order, so the sort is applied here rather than left to the repository.
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(user.Orders, func(i, j int) bool {
		return user.Orders[i].PurchaseDate.After(user.Orders[j].PurchaseDate)
	})

	return user, nil
}

// GetOrder retrieves a single order from the user's own history. The lookup
// is scoped to the requesting user, so another user's order ID yields
// not-found rather than leaking data.
func (s *UserService) GetOrder(userID, orderID string) (*models.Order, error) {
	return s.orderRepo.GetByUser(userID, orderID)
}
