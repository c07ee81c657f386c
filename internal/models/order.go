// internal/models/order.go
package models

import "github.com/google/uuid"

type Order struct {
	BaseModel
	CustomerName  string `json:"customer_name" gorm:"size:200;not null"`
	CustomerPhone string `json:"customer_phone" gorm:"size:20;not null"`
	CustomerEmail string `json:"customer_email" gorm:"size:255"`

	// Shipping fields are optional and default to empty strings, never NULL.
	ShippingAddress    string `json:"shipping_address" gorm:"type:text"`
	ShippingCity       string `json:"shipping_city" gorm:"size:100"`
	ShippingPostalCode string `json:"shipping_postal_code" gorm:"size:20"`

	Status OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	// TotalAmount is supplied by the order creator and stored verbatim. It is
	// not recomputed from the line items and may diverge from their sum.
	TotalAmount float64 `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Notes       string  `json:"notes" gorm:"type:text"`

	// Relationships
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// ItemsCount returns the number of loaded line items.
func (o *Order) ItemsCount() int {
	return len(o.Items)
}

// TotalQuantity sums the quantities of the loaded line items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// OrderItem is one line of an order: a quantity of one product/size with the
// unit price snapshotted at order time, immune to later product price edits.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Size      int       `json:"size" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Subtotal is computed on read and never stored.
func (i *OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
