package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles business logic for product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// AddReview creates a review attached to both the user's and the product's
// review sets. Both referenced records must exist.
func (s *ReviewService) AddReview(rating int, reviewText, userID, productID string) (*models.Review, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("review author: %w", err)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, fmt.Errorf("reviewed product: %w", err)
	}

	review := &models.Review{
		Rating:     rating,
		ReviewText: reviewText,
		UserID:     userID,
		ProductID:  productID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}
