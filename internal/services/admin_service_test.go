// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/models"
)

func TestProductBulkActions(t *testing.T) {
	db := setupTestDB(t)
	brandSvc := NewBrandService(db)
	seedBrand(t, db, "Nike")
	productSvc := NewProductService(db, brandSvc)
	adminSvc := NewAdminService(db)

	first, err := productSvc.CreateProduct(validProductRequest())
	require.NoError(t, err)
	req := validProductRequest()
	req.Name = "Court Vision"
	second, err := productSvc.CreateProduct(req)
	require.NoError(t, err)

	ids := []uuid.UUID{first.ID, second.ID}

	affected, err := adminSvc.RunProductBulkAction(ProductActionMarkSale, ids, productSvc)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	reloaded, err := productSvc.GetProduct(first.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsSale)

	affected, err = adminSvc.RunProductBulkAction(ProductActionDuplicate, []uuid.UUID{first.ID}, productSvc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	_, err = adminSvc.RunProductBulkAction(ProductBulkAction("explode"), ids, productSvc)
	assert.ErrorIs(t, err, ErrUnknownBulkAction)
}

func TestSizeBulkRestock(t *testing.T) {
	db := setupTestDB(t)
	brandSvc := NewBrandService(db)
	seedBrand(t, db, "Nike")
	productSvc := NewProductService(db, brandSvc)
	adminSvc := NewAdminService(db)

	product, err := productSvc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	var sizeIDs []uuid.UUID
	for _, size := range product.Sizes {
		sizeIDs = append(sizeIDs, size.ID)
	}

	affected, err := adminSvc.RunSizeBulkAction(SizeActionMarkUnavailable, sizeIDs)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	affected, err = adminSvc.RunSizeBulkAction(SizeActionRestock, sizeIDs)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	sizes, err := productSvc.ListSizes(product.ID)
	require.NoError(t, err)
	for _, size := range sizes {
		assert.Equal(t, 10, size.Stock)
		assert.True(t, size.IsAvailable)
	}
}

func TestBrandBulkActivation(t *testing.T) {
	db := setupTestDB(t)
	adminSvc := NewAdminService(db)

	first := seedBrand(t, db, "Nike")
	second := seedBrand(t, db, "Adidas")

	affected, err := adminSvc.RunBrandBulkAction(BrandActionDeactivate, []uuid.UUID{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	var active int64
	require.NoError(t, db.Model(&models.Brand{}).Where("is_active = true").Count(&active).Error)
	assert.Equal(t, int64(0), active)
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	brandSvc := NewBrandService(db)
	seedBrand(t, db, "Nike")
	productSvc := NewProductService(db, brandSvc)
	orderSvc := NewOrderService(db)
	adminSvc := NewAdminService(db)

	product, err := productSvc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	order, err := orderSvc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)

	cancelled, err := orderSvc.CreateOrder(validOrderRequest(product.ID))
	require.NoError(t, err)
	_, err = orderSvc.UpdateStatus(cancelled.ID, models.OrderStatusCancelled)
	require.NoError(t, err)

	stats, err := adminSvc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalBrands)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.OrdersByStatus[string(models.OrderStatusPending)])
	assert.Equal(t, int64(1), stats.OrdersByStatus[string(models.OrderStatusCancelled)])
	assert.Equal(t, int64(1), stats.PendingOrders)

	// Cancelled orders are excluded from revenue.
	assert.Equal(t, order.TotalAmount, stats.TotalRevenue)
	assert.Equal(t, order.TotalAmount, stats.MonthlyRevenue)

	// All three sizes were created with zero stock.
	assert.Equal(t, int64(3), stats.OutOfStockSizes)
}
