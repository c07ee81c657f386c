// internal/services/admin_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

// Bulk action names mirror the admin screen controls.
type ProductBulkAction string

const (
	ProductActionMarkNew    ProductBulkAction = "mark_new"
	ProductActionRemoveNew  ProductBulkAction = "remove_new"
	ProductActionMarkSale   ProductBulkAction = "mark_sale"
	ProductActionRemoveSale ProductBulkAction = "remove_sale"
	ProductActionFeature    ProductBulkAction = "feature"
	ProductActionUnfeature  ProductBulkAction = "unfeature"
	ProductActionDuplicate  ProductBulkAction = "duplicate"
)

type SizeBulkAction string

const (
	SizeActionMarkAvailable   SizeBulkAction = "mark_available"
	SizeActionMarkUnavailable SizeBulkAction = "mark_unavailable"
	SizeActionRestock         SizeBulkAction = "restock"
)

type BrandBulkAction string

const (
	BrandActionActivate   BrandBulkAction = "activate"
	BrandActionDeactivate BrandBulkAction = "deactivate"
)

// restockLevel is the stock every selected size row is reset to by the
// restock action.
const restockLevel = 10

type DashboardStats struct {
	TotalProducts   int64            `json:"total_products"`
	TotalBrands     int64            `json:"total_brands"`
	TotalOrders     int64            `json:"total_orders"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	TotalRevenue    float64          `json:"total_revenue"`
	MonthlyRevenue  float64          `json:"monthly_revenue"`
	MonthlyGrowth   float64          `json:"monthly_growth"`
	OutOfStockSizes int64            `json:"out_of_stock_sizes"`
	PendingOrders   int64            `json:"pending_orders"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetDashboardStats aggregates the admin landing page numbers. Revenue sums
// exclude cancelled orders; monthly growth compares the current calendar
// month against the previous one.
func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int64),
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&models.Brand{}).Count(&stats.TotalBrands).Error; err != nil {
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	for _, row := range statusCounts {
		stats.OrdersByStatus[row.Status] = row.Count
	}
	stats.PendingOrders = stats.OrdersByStatus[string(models.OrderStatusPending)]

	if err := s.db.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	if err := s.db.Model(&models.Order{}).
		Where("status != ? AND created_at >= ?", models.OrderStatusCancelled, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}

	var prevMonthRevenue float64
	if err := s.db.Model(&models.Order{}).
		Where("status != ? AND created_at >= ? AND created_at < ?",
			models.OrderStatusCancelled, prevMonthStart, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&prevMonthRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate previous month revenue: %w", err)
	}
	if prevMonthRevenue > 0 {
		stats.MonthlyGrowth = (stats.MonthlyRevenue - prevMonthRevenue) / prevMonthRevenue * 100
	}

	if err := s.db.Model(&models.ProductSize{}).
		Where("stock = 0").
		Count(&stats.OutOfStockSizes).Error; err != nil {
		return nil, fmt.Errorf("failed to count out-of-stock sizes: %w", err)
	}

	return stats, nil
}

// RunProductBulkAction applies the named action to every selected product and
// returns how many rows were affected. The duplicate action clones each
// product through the product service so galleries and sizes come along.
func (s *AdminService) RunProductBulkAction(action ProductBulkAction, ids []uuid.UUID, productService *ProductService) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var updates map[string]interface{}
	switch action {
	case ProductActionMarkNew:
		updates = map[string]interface{}{"is_new": true}
	case ProductActionRemoveNew:
		updates = map[string]interface{}{"is_new": false}
	case ProductActionMarkSale:
		updates = map[string]interface{}{"is_sale": true}
	case ProductActionRemoveSale:
		updates = map[string]interface{}{"is_sale": false}
	case ProductActionFeature:
		updates = map[string]interface{}{"is_featured": true}
	case ProductActionUnfeature:
		updates = map[string]interface{}{"is_featured": false}
	case ProductActionDuplicate:
		var count int64
		for _, id := range ids {
			if _, err := productService.DuplicateProduct(id); err != nil {
				return count, err
			}
			count++
		}
		return count, nil
	default:
		return 0, ErrUnknownBulkAction
	}

	result := s.db.Model(&models.Product{}).
		Where("id IN ?", ids).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update products: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// RunSizeBulkAction applies the named action to the selected size rows.
// Restock resets stock to a fixed level and re-enables the row.
func (s *AdminService) RunSizeBulkAction(action SizeBulkAction, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var updates map[string]interface{}
	switch action {
	case SizeActionMarkAvailable:
		updates = map[string]interface{}{"is_available": true}
	case SizeActionMarkUnavailable:
		updates = map[string]interface{}{"is_available": false}
	case SizeActionRestock:
		updates = map[string]interface{}{"stock": restockLevel, "is_available": true}
	default:
		return 0, ErrUnknownBulkAction
	}

	result := s.db.Model(&models.ProductSize{}).
		Where("id IN ?", ids).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update sizes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *AdminService) RunBrandBulkAction(action BrandBulkAction, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var active bool
	switch action {
	case BrandActionActivate:
		active = true
	case BrandActionDeactivate:
		active = false
	default:
		return 0, ErrUnknownBulkAction
	}

	result := s.db.Model(&models.Brand{}).
		Where("id IN ?", ids).
		Update("is_active", active)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update brands: %w", result.Error)
	}
	return result.RowsAffected, nil
}
