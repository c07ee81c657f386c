// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Logo        string `json:"logo,omitempty" validate:"omitempty,max=500"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Logo        *string `json:"logo,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type BrandSearchParams struct {
	utils.PaginationParams
	IsActive *bool `json:"is_active,omitempty"`
}

// BrandView is a brand plus the number of products whose brand string matches
// its name. The count is informational: the linkage is by string equality,
// not a foreign key (see DESIGN notes).
type BrandView struct {
	models.Brand
	ProductCount int64 `json:"product_count"`
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

func (s *BrandService) CreateBrand(req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand := &models.Brand{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBrandNameTaken
		}
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

func (s *BrandService) GetBrand(id uuid.UUID) (*BrandView, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	count, err := s.ProductCount(brand.Name)
	if err != nil {
		return nil, err
	}

	return &BrandView{Brand: brand, ProductCount: count}, nil
}

func (s *BrandService) ListBrands(params BrandSearchParams) ([]BrandView, int64, error) {
	query := s.db.Model(&models.Brand{})

	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	allowedSortFields := []string{"created_at", "name"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var brands []models.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch brands: %w", err)
	}

	views := make([]BrandView, 0, len(brands))
	for _, brand := range brands {
		count, err := s.ProductCount(brand.Name)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, BrandView{Brand: brand, ProductCount: count})
	}

	return views, total, nil
}

// ActiveBrandNames returns the names of all active brands, used by the
// product write path to validate the denormalized brand string.
func (s *BrandService) ActiveBrandNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Brand{}).
		Where("is_active = ?", true).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brand names: %w", err)
	}
	return names, nil
}

func (s *BrandService) UpdateBrand(id uuid.UUID, req *UpdateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&brand).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrBrandNameTaken
			}
			return nil, fmt.Errorf("failed to update brand: %w", err)
		}
	}

	return &brand, nil
}

// DeleteBrand removes the brand row only. Products referencing the name keep
// their brand string; the linkage is never enforced.
func (s *BrandService) DeleteBrand(id uuid.UUID) error {
	result := s.db.Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

// ProductCount counts products whose brand string equals the given name.
func (s *BrandService) ProductCount(name string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("brand = ?", name).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products for brand: %w", err)
	}
	return count, nil
}

// SetActive flips the soft flag on the selected brands and returns the
// number of rows affected.
func (s *BrandService) SetActive(ids []uuid.UUID, active bool) (int64, error) {
	result := s.db.Model(&models.Brand{}).
		Where("id IN ?", ids).
		Update("is_active", active)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update brands: %w", result.Error)
	}
	return result.RowsAffected, nil
}
