// internal/models/brand.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a catalog brand managed by the administrator. Products reference
// brands by name string only; renaming or deleting a brand never cascades to
// products (see Product.Brand).
type Brand struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Logo        string    `json:"logo" gorm:"size:500"`
	Description string    `json:"description" gorm:"type:text"`
	Website     string    `json:"website" gorm:"size:500"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}
