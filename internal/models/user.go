package models

import "gorm.io/gorm"

// User represents a user of the store. Orders are owned exclusively by their
// user; Reviews are shared with the reviewed product's review set.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string   `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Orders     []Order  `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Reviews    []Review `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
