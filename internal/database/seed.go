// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/config"
	"github.com/javlonbek/shoeshop-backend/internal/models"
)

// SeedInitialData creates the administrative account if none exists, using
// the bootstrap credentials from the environment.
func SeedInitialData(db *gorm.DB, cfg config.AdminConfig) error {
	var adminCount int64
	db.Model(&models.AdminUser{}).Count(&adminCount)

	if adminCount > 0 {
		return nil
	}

	admin := &models.AdminUser{
		Username: cfg.Username,
		Email:    cfg.Email,
	}

	if err := admin.SetPassword(cfg.Password); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.WithField("username", admin.Username).Info("Default admin user created")
	return nil
}

type sampleProduct struct {
	models.Product
	gallery []string
	sizes   []int
}

// SeedSampleData loads a small demo catalog (brands plus products with
// galleries and size runs). It is a no-op when any product already exists.
func SeedSampleData(db *gorm.DB) error {
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		return nil
	}

	brands := []models.Brand{
		{Name: "Nike", Website: "https://www.nike.com", IsActive: true},
		{Name: "Adidas", Website: "https://www.adidas.com", IsActive: true},
		{Name: "Puma", Website: "https://www.puma.com", IsActive: true},
		{Name: "New Balance", Website: "https://www.newbalance.com", IsActive: true},
	}
	for i := range brands {
		if err := db.Where("name = ?", brands[i].Name).FirstOrCreate(&brands[i]).Error; err != nil {
			return fmt.Errorf("failed to seed brand %s: %w", brands[i].Name, err)
		}
	}

	price := func(v float64) *float64 { return &v }

	samples := []sampleProduct{
		{
			Product: models.Product{
				Name: "Air Max 90", Brand: "Nike",
				Price: 1850000, OriginalPrice: price(2200000),
				ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
				Category: models.CategoryMen, IsSale: true,
				DescriptionUz: "Klassik Air Max 90 - maksimal qulaylik va zamonaviy dizayn. Yuqori sifatli materiallar va havo yostig'i texnologiyasi.",
				DescriptionRu: "Классические Air Max 90 - максимальный комфорт и современный дизайн. Высококачественные материалы и технология воздушной подушки.",
			},
			gallery: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
				"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=600&q=80",
			},
			sizes: []int{40, 41, 42, 43, 44, 45},
		},
		{
			Product: models.Product{
				Name: "Ultraboost 22", Brand: "Adidas",
				Price:    2100000,
				ImageURL: "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=600&q=80",
				Category: models.CategoryUnisex, IsNew: true,
				DescriptionUz: "Ultraboost 22 - eng yuqori darajadagi qulaylik. Boost texnologiyasi har bir qadamda energiya qaytaradi.",
				DescriptionRu: "Ultraboost 22 - высочайший уровень комфорта. Технология Boost возвращает энергию при каждом шаге.",
			},
			gallery: []string{
				"https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=600&q=80",
				"https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=600&q=80",
			},
			sizes: []int{39, 40, 41, 42, 43, 44},
		},
		{
			Product: models.Product{
				Name: "RS-X³", Brand: "Puma",
				Price:    1650000,
				ImageURL: "https://images.unsplash.com/photo-1600185365926-3a2ce3cdb9eb?w=600&q=80",
				Category: models.CategoryWomen,
				DescriptionUz: "RS-X³ - retro uslub va zamonaviy texnologiya uyg'unligi. Kuchli taglik va yorqin dizayn.",
				DescriptionRu: "RS-X³ - сочетание ретро стиля и современных технологий. Мощная подошва и яркий дизайн.",
			},
			gallery: []string{"https://images.unsplash.com/photo-1600185365926-3a2ce3cdb9eb?w=600&q=80"},
			sizes:   []int{38, 39, 40, 41, 42, 43},
		},
		{
			Product: models.Product{
				Name: "Air Jordan 1 High", Brand: "Nike",
				Price:    2800000,
				ImageURL: "https://images.unsplash.com/photo-1597045566677-8cf032ed6634?w=600&q=80",
				Category: models.CategoryMen, IsNew: true,
				DescriptionUz: "Air Jordan 1 High - afsonaviy basketbol krossovkasi. Premium charm va klassik dizayn.",
				DescriptionRu: "Air Jordan 1 High - легендарные баскетбольные кроссовки. Премиум кожа и классический дизайн.",
			},
			gallery: []string{"https://images.unsplash.com/photo-1597045566677-8cf032ed6634?w=600&q=80"},
			sizes:   []int{40, 41, 42, 43, 44, 45, 46},
		},
		{
			Product: models.Product{
				Name: "New Balance 574", Brand: "New Balance",
				Price: 1450000, OriginalPrice: price(1700000),
				ImageURL: "https://images.unsplash.com/photo-1539185441755-769473a23570?w=600&q=80",
				Category: models.CategoryUnisex, IsSale: true,
				DescriptionUz: "New Balance 574 - klassik retro dizayni bilan eng sevimli model. Qulaylik va uslub uyg'unligi.",
				DescriptionRu: "New Balance 574 - самая любимая модель с классическим ретро дизайном. Сочетание комфорта и стиля.",
			},
			gallery: []string{"https://images.unsplash.com/photo-1539185441755-769473a23570?w=600&q=80"},
			sizes:   []int{39, 40, 41, 42, 43, 44},
		},
	}

	for _, sample := range samples {
		err := db.Transaction(func(tx *gorm.DB) error {
			product := sample.Product
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			for idx, imageURL := range sample.gallery {
				image := models.ProductImage{
					ProductID: product.ID,
					ImageURL:  imageURL,
					Order:     idx,
				}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
			for _, size := range sample.sizes {
				row := models.ProductSize{
					ProductID:   product.ID,
					Size:        size,
					IsAvailable: true,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", sample.Name, err)
		}
		logrus.WithField("product", sample.Name).Info("Seeded sample product")
	}

	logrus.WithField("count", len(samples)).Info("Sample catalog loaded")
	return nil
}
