package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the store catalog.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	Image       string          `json:"image" validate:"omitempty,max=255"`
	CategoryID  string          `json:"category_id" gorm:"type:varchar(36);index"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews     []Review        `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
