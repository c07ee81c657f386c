// internal/services/product_service.go
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

type ProductService struct {
	db           *gorm.DB
	brandService *BrandService
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Brand         string   `json:"brand" validate:"required,max=100"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Image         string   `json:"image,omitempty" validate:"omitempty,max=500"`
	ImageURL      string   `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	Category      string   `json:"category" validate:"required,oneof=men women unisex"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsSale        bool     `json:"is_sale,omitempty"`
	IsFeatured    bool     `json:"is_featured,omitempty"`
	StockQuantity int      `json:"stock_quantity,omitempty" validate:"min=0"`
	DescriptionUz string   `json:"description_uz" validate:"required"`
	DescriptionRu string   `json:"description_ru" validate:"required"`
	Images        []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Sizes         []int    `json:"sizes,omitempty" validate:"omitempty,dive,gt=0"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitnil,min=1,max=200"`
	Brand         *string  `json:"brand,omitempty" validate:"omitnil,max=100"`
	Price         *float64 `json:"price,omitempty" validate:"omitnil,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitnil,gt=0"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,max=500"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	Category      *string  `json:"category,omitempty" validate:"omitnil,oneof=men women unisex"`
	IsNew         *bool    `json:"is_new,omitempty"`
	IsSale        *bool    `json:"is_sale,omitempty"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	DescriptionUz *string  `json:"description_uz,omitempty" validate:"omitnil,min=1"`
	DescriptionRu *string  `json:"description_ru,omitempty" validate:"omitnil,min=1"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Category   string   `json:"category,omitempty"`
	Brand      string   `json:"brand,omitempty"`
	IsNew      *bool    `json:"is_new,omitempty"`
	IsSale     *bool    `json:"is_sale,omitempty"`
	IsFeatured *bool    `json:"is_featured,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
}

type AddSizeRequest struct {
	Size        int  `json:"size" validate:"required,gt=0"`
	Stock       int  `json:"stock,omitempty" validate:"min=0"`
	IsAvailable *bool `json:"is_available,omitempty"`
}

type UpdateSizeRequest struct {
	Stock       *int  `json:"stock,omitempty" validate:"omitempty,min=0"`
	IsAvailable *bool `json:"is_available,omitempty"`
}

func NewProductService(db *gorm.DB, brandService *BrandService) *ProductService {
	return &ProductService{
		db:           db,
		brandService: brandService,
	}
}

// CreateProduct creates the product together with its gallery images (one
// row per URL, display order = list index) and its size run (default stock 0,
// available). The whole write is one transaction: a failing child insert
// rolls back the product.
func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.validateBrand(req.Brand); err != nil {
		return nil, err
	}

	// Reject duplicate sizes within one call before touching the database.
	seen := make(map[int]bool, len(req.Sizes))
	for _, size := range req.Sizes {
		if seen[size] {
			return nil, ErrDuplicateSize
		}
		seen[size] = true
	}

	product := &models.Product{
		Name:          req.Name,
		Brand:         req.Brand,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		ImageURL:      req.ImageURL,
		Category:      models.Category(req.Category),
		IsNew:         req.IsNew,
		IsSale:        req.IsSale,
		IsFeatured:    req.IsFeatured,
		StockQuantity: req.StockQuantity,
		DescriptionUz: req.DescriptionUz,
		DescriptionRu: req.DescriptionRu,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for idx, imageURL := range req.Images {
			image := &models.ProductImage{
				ProductID: product.ID,
				ImageURL:  imageURL,
				Order:     idx,
			}
			if err := tx.Create(image).Error; err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}

		for _, size := range req.Sizes {
			row := &models.ProductSize{
				ProductID:   product.ID,
				Size:        size,
				Stock:       0,
				IsAvailable: true,
			}
			if err := tx.Create(row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateSize
				}
				return fmt.Errorf("failed to create product size: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(product.ID)
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC")
		})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Brand != "" {
		query = query.Where("brand = ?", params.Brand)
	}
	if params.IsNew != nil {
		query = query.Where("is_new = ?", *params.IsNew)
	}
	if params.IsSale != nil {
		query = query.Where("is_sale = ?", *params.IsSale)
	}
	if params.IsFeatured != nil {
		query = query.Where("is_featured = ?", *params.IsFeatured)
	}
	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description_uz) LIKE ? OR LOWER(description_ru) LIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "price", "name"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Brand != nil {
		if err := s.validateBrand(*req.Brand); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if req.IsSale != nil {
		updates["is_sale"] = *req.IsSale
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.DescriptionUz != nil {
		updates["description_uz"] = *req.DescriptionUz
	}
	if req.DescriptionRu != nil {
		updates["description_ru"] = *req.DescriptionRu
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(id)
}

// DeleteProduct removes the product; its images and sizes go with it via the
// ON DELETE CASCADE constraints.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DuplicateProduct clones the product with every gallery image and size row,
// suffixing the name with " (Copy)". The clone is a single transaction: any
// failing child insert rolls the whole copy back.
func (s *ProductService) DuplicateProduct(id uuid.UUID) (*models.Product, error) {
	source, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	clone := &models.Product{
		Name:          source.Name + " (Copy)",
		Brand:         source.Brand,
		Price:         source.Price,
		OriginalPrice: source.OriginalPrice,
		Image:         source.Image,
		ImageURL:      source.ImageURL,
		Category:      source.Category,
		IsNew:         source.IsNew,
		IsSale:        source.IsSale,
		IsFeatured:    source.IsFeatured,
		StockQuantity: source.StockQuantity,
		DescriptionUz: source.DescriptionUz,
		DescriptionRu: source.DescriptionRu,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clone).Error; err != nil {
			return fmt.Errorf("failed to duplicate product: %w", err)
		}

		for _, image := range source.Images {
			copied := &models.ProductImage{
				ProductID: clone.ID,
				Image:     image.Image,
				ImageURL:  image.ImageURL,
				Order:     image.Order,
				AltText:   image.AltText,
			}
			if err := tx.Create(copied).Error; err != nil {
				return fmt.Errorf("failed to duplicate product image: %w", err)
			}
		}

		for _, size := range source.Sizes {
			copied := &models.ProductSize{
				ProductID:   clone.ID,
				Size:        size.Size,
				Stock:       size.Stock,
				IsAvailable: size.IsAvailable,
			}
			if err := tx.Create(copied).Error; err != nil {
				return fmt.Errorf("failed to duplicate product size: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(clone.ID)
}

func (s *ProductService) ListImages(productID uuid.UUID) ([]models.ProductImage, error) {
	if err := s.ensureProductExists(productID); err != nil {
		return nil, err
	}

	var images []models.ProductImage
	if err := s.db.
		Where("product_id = ?", productID).
		Order("display_order ASC, id ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product images: %w", err)
	}
	return images, nil
}

func (s *ProductService) ListSizes(productID uuid.UUID) ([]models.ProductSize, error) {
	if err := s.ensureProductExists(productID); err != nil {
		return nil, err
	}

	var sizes []models.ProductSize
	if err := s.db.
		Where("product_id = ?", productID).
		Order("size ASC").
		Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product sizes: %w", err)
	}
	return sizes, nil
}

func (s *ProductService) AddSize(productID uuid.UUID, req *AddSizeRequest) (*models.ProductSize, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.ensureProductExists(productID); err != nil {
		return nil, err
	}

	row := &models.ProductSize{
		ProductID:   productID,
		Size:        req.Size,
		Stock:       req.Stock,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		row.IsAvailable = *req.IsAvailable
	}

	if err := s.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSize
		}
		return nil, fmt.Errorf("failed to create product size: %w", err)
	}

	return row, nil
}

func (s *ProductService) UpdateSize(productID uuid.UUID, size int, req *UpdateSizeRequest) (*models.ProductSize, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var row models.ProductSize
	if err := s.db.First(&row, "product_id = ? AND size = ?", productID, size).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSizeNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) > 0 {
		if err := s.db.Model(&row).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product size: %w", err)
		}
	}

	return &row, nil
}

func (s *ProductService) RemoveSize(productID uuid.UUID, size int) error {
	result := s.db.Delete(&models.ProductSize{}, "product_id = ? AND size = ?", productID, size)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product size: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSizeNotFound
	}
	return nil
}

// TotalStock aggregates stock across all size rows of the product. A product
// with no sizes aggregates to zero.
func (s *ProductService) TotalStock(productID uuid.UUID) (int, error) {
	if err := s.ensureProductExists(productID); err != nil {
		return 0, err
	}

	var total int64
	if err := s.db.Model(&models.ProductSize{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(stock), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to aggregate stock: %w", err)
	}
	return int(total), nil
}

func (s *ProductService) ensureProductExists(id uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return nil
}

// validateBrand checks the denormalized brand string against the active
// brand list. The linkage stays a plain string in storage; this is the only
// place it is enforced.
func (s *ProductService) validateBrand(name string) error {
	if name == "" || s.brandService == nil {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Brand{}).
		Where("name = ? AND is_active = ?", name, true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return ErrUnknownBrand
	}
	return nil
}
