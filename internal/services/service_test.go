// internal/services/service_test.go
package services

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javlonbek/shoeshop-backend/internal/models"
)

// setupTestDB opens the database named by TEST_DATABASE_URL, migrates the
// schema and empties every table. Tests that need a database are skipped
// when the variable is unset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.AdminUser{},
		&models.Brand{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductSize{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	for _, table := range []string{
		"order_items", "orders", "product_sizes", "product_images",
		"products", "brands", "audit_logs", "admin_users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}

	return db
}

func seedBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()

	brand := &models.Brand{Name: name, IsActive: true}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("failed to seed brand %s: %v", name, err)
	}
	return brand
}
