package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem represents a single product line within an order. Position keeps
// the cart order stable; a product appearing twice in the cart yields two
// rows. UnitPrice is the catalog price at the time of purchase.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"-" gorm:"type:varchar(36);index"`
	Position  int             `json:"-"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
}

// Order represents a customer order. An order belongs to exactly one user and
// is append-only: it is created through order placement or checkout and never
// edited afterwards.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string      `json:"user_id" gorm:"type:varchar(36);index"`
	PurchaseDate time.Time   `json:"purchase_date"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProductIDs returns the order's product references in line order.
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
