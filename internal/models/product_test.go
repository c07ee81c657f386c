// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestProductDiscountPercent(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		originalPrice *float64
		want          int
	}{
		{
			name:  "no original price",
			price: 1500000,
			want:  0,
		},
		{
			name:          "original equals price",
			price:         1500000,
			originalPrice: floatPtr(1500000),
			want:          0,
		},
		{
			name:          "original below price",
			price:         1500000,
			originalPrice: floatPtr(1200000),
			want:          0,
		},
		{
			name:          "sixteen percent off",
			price:         1850000,
			originalPrice: floatPtr(2200000),
			want:          16,
		},
		{
			name:          "half price",
			price:         500000,
			originalPrice: floatPtr(1000000),
			want:          50,
		},
		{
			name:          "rounds up",
			price:         665000,
			originalPrice: floatPtr(1000000),
			want:          34, // 33.5 rounds to 34
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.originalPrice}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestProductDiscountPercentage(t *testing.T) {
	p := Product{Price: 1850000, OriginalPrice: floatPtr(2200000)}
	assert.Equal(t, "16%", p.DiscountPercentage())

	p = Product{Price: 1850000}
	assert.Equal(t, "0%", p.DiscountPercentage())
}

func TestProductCurrentImageURL(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		imageURL string
		want     string
	}{
		{"uploaded file wins", "products/a.jpg", "https://cdn.example.com/b.jpg", "products/a.jpg"},
		{"external url fallback", "", "https://cdn.example.com/b.jpg", "https://cdn.example.com/b.jpg"},
		{"no image", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Image: tt.image, ImageURL: tt.imageURL}
			assert.Equal(t, tt.want, p.CurrentImageURL())

			img := ProductImage{Image: tt.image, ImageURL: tt.imageURL}
			assert.Equal(t, tt.want, img.CurrentImageURL())
		})
	}
}

func TestProductTotalStock(t *testing.T) {
	p := Product{}
	assert.Equal(t, 0, p.TotalStock())

	p.Sizes = []ProductSize{
		{Size: 40, Stock: 3},
		{Size: 41, Stock: 0},
		{Size: 42, Stock: 7},
	}
	assert.Equal(t, 10, p.TotalStock())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryMen.Valid())
	assert.True(t, CategoryWomen.Valid())
	assert.True(t, CategoryUnisex.Valid())
	assert.False(t, Category("kids").Valid())
	assert.False(t, Category("").Valid())
}
