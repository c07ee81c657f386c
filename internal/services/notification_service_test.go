// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/config"
	"github.com/javlonbek/shoeshop-backend/internal/models"
)

func TestNewOrderEmailTemplate(t *testing.T) {
	svc := NewNotificationService(&config.Config{})

	tmpl := svc.getEmailTemplate("new_order")
	body, err := svc.renderTemplate(tmpl.Body, map[string]interface{}{
		"CustomerName":  "Javlon",
		"CustomerPhone": "+998901234567",
		"TotalAmount":   3700000.0,
		"AdminURL":      "http://localhost:3000/admin/orders/abc",
		"Items": []map[string]interface{}{
			{"ProductName": "Air Max 90", "Size": 42, "Quantity": 2, "Price": 1850000.0, "Subtotal": 3700000.0},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Javlon")
	assert.Contains(t, body, "Air Max 90")
	assert.Contains(t, body, "http://localhost:3000/admin/orders/abc")
}

func TestSendNewOrderEmailSkipsWithoutRecipient(t *testing.T) {
	svc := NewNotificationService(&config.Config{})

	order := &models.Order{CustomerName: "Javlon"}
	assert.NoError(t, svc.SendNewOrderEmail(order))
}

func TestSendOrderStatusEmailSkipsWithoutCustomerEmail(t *testing.T) {
	svc := NewNotificationService(&config.Config{})

	order := &models.Order{Status: models.OrderStatusShipped}
	assert.NoError(t, svc.SendOrderStatusEmail(order))
}
