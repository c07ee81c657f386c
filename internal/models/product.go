// internal/models/product.go
package models

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name  string `json:"name" gorm:"size:200;not null"`
	Brand string `json:"brand" gorm:"size:100;index"` // brand name string, not a foreign key
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	// OriginalPrice is the pre-sale price, used only for discount display.
	OriginalPrice *float64 `json:"original_price" gorm:"type:decimal(10,2)"`
	Image         string   `json:"image" gorm:"size:500"`     // uploaded file key/URL
	ImageURL      string   `json:"image_url" gorm:"size:500"` // external URL fallback
	Category      Category `json:"category" gorm:"type:varchar(10);not null;index"`
	IsNew         bool     `json:"is_new" gorm:"default:false;index"`
	IsSale        bool     `json:"is_sale" gorm:"default:false;index"`
	IsFeatured    bool     `json:"is_featured" gorm:"default:false;index"`
	// StockQuantity is a legacy total kept for the old admin forms. It is NOT
	// synchronized with the per-size rows; TotalStock is authoritative.
	StockQuantity int    `json:"stock_quantity" gorm:"default:0"`
	DescriptionUz string `json:"description_uz" gorm:"type:text;not null"`
	DescriptionRu string `json:"description_ru" gorm:"type:text;not null"`

	// Relationships
	Images []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Sizes  []ProductSize  `json:"sizes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// CurrentImageURL resolves the main product image: an uploaded file wins if
// present, otherwise the external URL, otherwise empty ("no image").
func (p *Product) CurrentImageURL() string {
	if p.Image != "" {
		return p.Image
	}
	return p.ImageURL
}

// DiscountPercent returns the rounded discount in whole percent. It is zero
// unless original_price is set and strictly greater than price.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// DiscountPercentage formats DiscountPercent for display, e.g. "16%".
func (p *Product) DiscountPercentage() string {
	return fmt.Sprintf("%d%%", p.DiscountPercent())
}

// TotalStock sums stock over the loaded size rows. A product with no sizes
// has zero stock.
func (p *Product) TotalStock() int {
	total := 0
	for _, s := range p.Sizes {
		total += s.Stock
	}
	return total
}

// ProductImage is a gallery image owned by exactly one product and deleted
// with it. Images are presented ascending by Order, ties broken by insertion.
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Image     string    `json:"image" gorm:"size:500"`
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	AltText   string    `json:"alt_text" gorm:"size:200"`
}

func (i *ProductImage) CurrentImageURL() string {
	if i.Image != "" {
		return i.Image
	}
	return i.ImageURL
}

// ProductSize is one EU shoe size of a product. The (product, size) pair is
// unique. IsAvailable is a soft flag independent of the stock count.
type ProductSize struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_product_size"`
	Size        int       `json:"size" gorm:"not null;uniqueIndex:idx_product_size"`
	Stock       int       `json:"stock" gorm:"default:0"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
}
