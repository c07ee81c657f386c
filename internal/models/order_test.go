// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to shipped skips a step", OrderStatusPending, OrderStatusShipped, false},
		{"pending to delivered skips steps", OrderStatusPending, OrderStatusDelivered, false},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"processing back to pending", OrderStatusProcessing, OrderStatusPending, false},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped to cancelled", OrderStatusShipped, OrderStatusCancelled, true},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"no self transition", OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusProcessing.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Price: 1850000, Quantity: 2}
	assert.Equal(t, float64(3700000), item.Subtotal())

	item = OrderItem{Price: 1850000, Quantity: 1}
	assert.Equal(t, float64(1850000), item.Subtotal())
}

func TestOrderItemAggregates(t *testing.T) {
	order := Order{}
	assert.Equal(t, 0, order.ItemsCount())
	assert.Equal(t, 0, order.TotalQuantity())

	order.Items = []OrderItem{
		{Size: 41, Quantity: 2, Price: 1000000},
		{Size: 42, Quantity: 1, Price: 1500000},
	}
	assert.Equal(t, 2, order.ItemsCount())
	assert.Equal(t, 3, order.TotalQuantity())
}
