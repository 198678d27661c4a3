package models

import "gorm.io/gorm"

// Review represents a product review written by a user. A review belongs to
// exactly one user and exactly one product; both sides see it through their
// review sets.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" gorm:"type:text" validate:"required,max=2000"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	ProductID  string `json:"product_id" gorm:"type:varchar(36);index" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
