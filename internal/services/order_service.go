// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      int       `json:"size" validate:"required,gt=0"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,max=200"`
	CustomerPhone   string             `json:"customer_phone" validate:"required,uz_phone"`
	CustomerEmail   string             `json:"customer_email,omitempty" validate:"omitempty,email"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	ShippingCity    string             `json:"shipping_city,omitempty" validate:"omitempty,max=100"`
	PostalCode      string             `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	TotalAmount     float64            `json:"total_amount" validate:"required,gt=0"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderSearchParams struct {
	utils.PaginationParams
	Status string `json:"status,omitempty"`
}

// OrderSummary is the flattened per-item view used by the admin order detail
// screen: product name, size, quantity, unit price and the derived subtotal.
type OrderSummaryItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Size        int       `json:"size"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Subtotal    float64   `json:"subtotal"`
}

type OrderSummary struct {
	Order         *models.Order      `json:"order"`
	Items         []OrderSummaryItem `json:"items"`
	ItemsCount    int                `json:"items_count"`
	TotalQuantity int                `json:"total_quantity"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder captures an order atomically: the header plus every line item
// land in one transaction, and any unknown product id rolls the whole order
// back. The status is always forced to pending regardless of input, and the
// stated total is stored verbatim without recomputation from the lines.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order := &models.Order{
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.PostalCode,
		Status:             models.OrderStatusPending,
		TotalAmount:        req.TotalAmount,
		Notes:              req.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range req.Items {
			var count int64
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			if count == 0 {
				return ErrProductNotFound
			}

			row := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Size:      item.Size,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(order.ID)
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &order, nil
}

// GetOrderSummary returns the order with its items flattened for display,
// including per-line subtotals.
func (s *OrderService) GetOrderSummary(id uuid.UUID) (*OrderSummary, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	summary := &OrderSummary{
		Order:         order,
		ItemsCount:    order.ItemsCount(),
		TotalQuantity: order.TotalQuantity(),
	}
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		summary.Items = append(summary.Items, OrderSummaryItem{
			ProductID:   item.ProductID,
			ProductName: name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	return summary, nil
}

func (s *OrderService) SearchOrders(params OrderSearchParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Product")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ? OR LOWER(customer_email) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "total_amount", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus moves one order along the status workflow. Transitions that
// the workflow does not allow are rejected; terminal orders never move.
func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return s.GetOrder(id)
}

// BulkUpdateStatus is the admin override: it stamps the given status on
// every matched order unconditionally, skipping the transition rules, and
// reports how many rows actually changed. Missing ids are silently ignored.
func (s *OrderService) BulkUpdateStatus(ids []uuid.UUID, status models.OrderStatus) (int64, error) {
	if !status.Valid() {
		return 0, ErrInvalidTransition
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := s.db.Model(&models.Order{}).
		Where("id IN ?", ids).
		Update("status", status)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update orders: %w", result.Error)
	}

	return result.RowsAffected, nil
}
