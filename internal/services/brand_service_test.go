// internal/services/brand_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

func TestBrandCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	brand, err := svc.CreateBrand(&CreateBrandRequest{
		Name:        "Nike",
		Description: "Just do it",
	})
	require.NoError(t, err)
	assert.True(t, brand.IsActive)

	// Second brand with the same name conflicts.
	_, err = svc.CreateBrand(&CreateBrandRequest{Name: "Nike"})
	assert.ErrorIs(t, err, ErrBrandNameTaken)

	view, err := svc.GetBrand(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nike", view.Name)
	assert.Equal(t, int64(0), view.ProductCount)

	newName := "Nike Inc"
	updated, err := svc.UpdateBrand(brand.ID, &UpdateBrandRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Nike Inc", updated.Name)

	require.NoError(t, svc.DeleteBrand(brand.ID))
	assert.ErrorIs(t, svc.DeleteBrand(brand.ID), ErrBrandNotFound)

	_, err = svc.GetBrand(brand.ID)
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestBrandListAndActiveNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	seedBrand(t, db, "Nike")
	seedBrand(t, db, "Adidas")
	inactive := seedBrand(t, db, "Puma")

	affected, err := svc.SetActive([]uuid.UUID{inactive.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	names, err := svc.ActiveBrandNames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Nike", "Adidas"}, names)

	brands, total, err := svc.ListBrands(BrandSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "name", Order: "asc"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, brands, 3)

	isActive := true
	active, total, err := svc.ListBrands(BrandSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20},
		IsActive:         &isActive,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, active, 2)
}
