// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

func newCatalogServices(t *testing.T) (*ProductService, *BrandService) {
	t.Helper()
	db := setupTestDB(t)
	brandSvc := NewBrandService(db)
	seedBrand(t, db, "Nike")
	return NewProductService(db, brandSvc), brandSvc
}

func validProductRequest() *CreateProductRequest {
	op := 2200000.0
	return &CreateProductRequest{
		Name:          "Air Max 90",
		Brand:         "Nike",
		Price:         1850000,
		OriginalPrice: &op,
		Category:      "men",
		IsNew:         true,
		DescriptionUz: "Zamonaviy krossovka",
		DescriptionRu: "Современные кроссовки",
		Images: []string{
			"https://cdn.example.com/airmax-1.jpg",
			"https://cdn.example.com/airmax-2.jpg",
		},
		Sizes: []int{40, 41, 42},
	}
}

func TestCreateProductWithImagesAndSizes(t *testing.T) {
	svc, _ := newCatalogServices(t)

	product, err := svc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].Order)
	assert.Equal(t, 1, product.Images[1].Order)
	assert.Equal(t, "https://cdn.example.com/airmax-1.jpg", product.Images[0].ImageURL)

	require.Len(t, product.Sizes, 3)
	for _, size := range product.Sizes {
		assert.Equal(t, 0, size.Stock)
		assert.True(t, size.IsAvailable)
	}
	assert.Equal(t, 0, product.TotalStock())
}

func TestCreateProductRejectsUnknownBrand(t *testing.T) {
	svc, _ := newCatalogServices(t)

	req := validProductRequest()
	req.Brand = "Reebok"
	_, err := svc.CreateProduct(req)
	assert.ErrorIs(t, err, ErrUnknownBrand)
}

func TestCreateProductRejectsDuplicateSizes(t *testing.T) {
	svc, _ := newCatalogServices(t)

	req := validProductRequest()
	req.Sizes = []int{41, 41}
	_, err := svc.CreateProduct(req)
	assert.ErrorIs(t, err, ErrDuplicateSize)
}

func TestDuplicateProduct(t *testing.T) {
	svc, _ := newCatalogServices(t)

	original, err := svc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	clone, err := svc.DuplicateProduct(original.ID)
	require.NoError(t, err)

	assert.Equal(t, "Air Max 90 (Copy)", clone.Name)
	assert.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, original.Price, clone.Price)
	assert.Len(t, clone.Images, 2)
	assert.Len(t, clone.Sizes, 3)

	// The original is untouched.
	reloaded, err := svc.GetProduct(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 90", reloaded.Name)
	assert.Len(t, reloaded.Images, 2)
	assert.Len(t, reloaded.Sizes, 3)
}

func TestSizeManagement(t *testing.T) {
	svc, _ := newCatalogServices(t)

	req := validProductRequest()
	req.Sizes = []int{41}
	product, err := svc.CreateProduct(req)
	require.NoError(t, err)

	// Adding an existing size conflicts and changes nothing.
	_, err = svc.AddSize(product.ID, &AddSizeRequest{Size: 41})
	assert.ErrorIs(t, err, ErrDuplicateSize)

	sizes, err := svc.ListSizes(product.ID)
	require.NoError(t, err)
	assert.Len(t, sizes, 1)

	added, err := svc.AddSize(product.ID, &AddSizeRequest{Size: 42, Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, added.Stock)

	stock := 8
	updated, err := svc.UpdateSize(product.ID, 42, &UpdateSizeRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)

	total, err := svc.TotalStock(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	require.NoError(t, svc.RemoveSize(product.ID, 42))
	assert.ErrorIs(t, svc.RemoveSize(product.ID, 42), ErrSizeNotFound)
}

func TestDeleteProductCascades(t *testing.T) {
	svc, _ := newCatalogServices(t)

	product, err := svc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(product.ID))
	assert.ErrorIs(t, svc.DeleteProduct(product.ID), ErrProductNotFound)

	_, err = svc.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchProductsFilters(t *testing.T) {
	svc, _ := newCatalogServices(t)

	first := validProductRequest()
	_, err := svc.CreateProduct(first)
	require.NoError(t, err)

	second := validProductRequest()
	second.Name = "Court Vision"
	second.Category = "women"
	second.IsNew = false
	second.IsSale = true
	second.Price = 900000
	second.OriginalPrice = nil
	second.Sizes = []int{37, 38}
	_, err = svc.CreateProduct(second)
	require.NoError(t, err)

	pagination := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	byCategory, total, err := svc.SearchProducts(ProductSearchParams{
		PaginationParams: pagination,
		Category:         string(models.CategoryWomen),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Court Vision", byCategory[0].Name)

	onSale := true
	bySale, total, err := svc.SearchProducts(ProductSearchParams{
		PaginationParams: pagination,
		IsSale:           &onSale,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Court Vision", bySale[0].Name)

	byText, total, err := svc.SearchProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Search: "air max"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Air Max 90", byText[0].Name)

	min := 1000000.0
	byPrice, total, err := svc.SearchProducts(ProductSearchParams{
		PaginationParams: pagination,
		PriceMin:         &min,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Air Max 90", byPrice[0].Name)
}

func TestUpdateProductPartial(t *testing.T) {
	svc, _ := newCatalogServices(t)

	product, err := svc.CreateProduct(validProductRequest())
	require.NoError(t, err)

	price := 1700000.0
	sale := true
	updated, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{
		Price:  &price,
		IsSale: &sale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1700000.0, updated.Price)
	assert.True(t, updated.IsSale)
	assert.Equal(t, "Air Max 90", updated.Name)

	unknown := "Reebok"
	_, err = svc.UpdateProduct(product.ID, &UpdateProductRequest{Brand: &unknown})
	assert.ErrorIs(t, err, ErrUnknownBrand)

	// Required text fields cannot be blanked via a partial update.
	empty := ""
	_, err = svc.UpdateProduct(product.ID, &UpdateProductRequest{DescriptionUz: &empty})
	assert.Error(t, err)
	_, err = svc.UpdateProduct(product.ID, &UpdateProductRequest{Name: &empty})
	assert.Error(t, err)
	zero := 0.0
	_, err = svc.UpdateProduct(product.ID, &UpdateProductRequest{Price: &zero})
	assert.Error(t, err)

	_, err = svc.UpdateProduct(uuid.New(), &UpdateProductRequest{Price: &price})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
