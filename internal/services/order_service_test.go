// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:          name,
		Brand:         "Nike",
		Price:         1850000,
		Category:      models.CategoryMen,
		DescriptionUz: "Tavsif",
		DescriptionRu: "Описание",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}
	return product
}

func validOrderRequest(productID uuid.UUID) *CreateOrderRequest {
	return &CreateOrderRequest{
		CustomerName:  "Javlon Bekmurodov",
		CustomerPhone: "+998901234567",
		TotalAmount:   3700000,
		Items: []OrderItemRequest{
			{ProductID: productID, Size: 42, Quantity: 2, Price: 1850000},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	order, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 42, order.Items[0].Size)
	assert.Equal(t, float64(1850000), order.Items[0].Price)
	require.NotNil(t, order.Items[0].Product)
	assert.Equal(t, "Air Max 90", order.Items[0].Product.Name)
}

func TestCreateOrderStoresStatedTotalVerbatim(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	// Stated total diverges from the line item sum and is kept as given.
	req := validOrderRequest(product.ID)
	req.TotalAmount = 999999

	order, err := svc.CreateOrder(req)
	require.NoError(t, err)
	assert.Equal(t, float64(999999), order.TotalAmount)
	assert.Equal(t, float64(3700000), order.Items[0].Subtotal())
}

func TestCreateOrderRollsBackOnUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	req := validOrderRequest(product.ID)
	req.Items = append(req.Items, OrderItemRequest{
		ProductID: uuid.New(), Size: 41, Quantity: 1, Price: 100,
	})

	_, err := svc.CreateOrder(req)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// No header and no items survive the rollback.
	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), items)
}

func TestUpdateStatusFollowsWorkflow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	order, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	// Skipping processing is rejected.
	_, err = svc.UpdateStatus(order.ID, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	order, err = svc.UpdateStatus(order.ID, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	order, err = svc.UpdateStatus(order.ID, models.OrderStatusShipped)
	require.NoError(t, err)

	order, err = svc.UpdateStatus(order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)

	// Delivered is terminal.
	_, err = svc.UpdateStatus(order.ID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(uuid.New(), models.OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestBulkUpdateStatusOverridesWorkflow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	first, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)
	second, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	// Bulk update jumps straight to delivered and ignores missing ids.
	affected, err := svc.BulkUpdateStatus(
		[]uuid.UUID{first.ID, second.ID, uuid.New()},
		models.OrderStatusDelivered,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	reloaded, err := svc.GetOrder(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)

	affected, err = svc.BulkUpdateStatus(nil, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestSearchOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	first, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	other := validOrderRequest(product.ID)
	other.CustomerName = "Aziza Karimova"
	_, err = svc.CreateOrder(other)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, models.OrderStatusProcessing)
	require.NoError(t, err)

	pagination := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	byStatus, total, err := svc.SearchOrders(OrderSearchParams{
		PaginationParams: pagination,
		Status:           string(models.OrderStatusProcessing),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Javlon Bekmurodov", byStatus[0].CustomerName)

	byName, total, err := svc.SearchOrders(OrderSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Search: "aziza"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Aziza Karimova", byName[0].CustomerName)
}

func TestGetOrderSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	product := seedProduct(t, db, "Air Max 90")

	order, err := svc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	summary, err := svc.GetOrderSummary(order.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "Air Max 90", summary.Items[0].ProductName)
	assert.Equal(t, float64(3700000), summary.Items[0].Subtotal)
	assert.Equal(t, 1, summary.ItemsCount)
	assert.Equal(t, 2, summary.TotalQuantity)

	_, err = svc.GetOrderSummary(uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
