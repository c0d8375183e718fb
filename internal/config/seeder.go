package config

import (
	"log"

	"rentease/internal/adapters/persistence/models"
	"rentease/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if err := s.seedCatalog(); err != nil {
		log.Printf("⚠️ Catalog seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    "admin@rentease.local",
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("   Created admin user: %s", admin.Email)
	return nil
}

// seedCatalog seeds a small demo catalog when the products table is empty
func (s *Seeder) seedCatalog() error {
	var count int64
	s.db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "Two-Seater Fabric Sofa",
			Category:    "Sofa",
			Description: "Compact two-seater in grey fabric, fits small living rooms.",
			Price:       500,
			Image:       "https://images.rentease.local/sofa-two-seater.jpg",
		},
		{
			Name:        "Queen Bed Frame",
			Category:    "Bed",
			Description: "Solid wood queen bed frame with slatted base.",
			Price:       650,
			Image:       "https://images.rentease.local/queen-bed.jpg",
		},
		{
			Name:        "43\" Smart TV",
			Category:    "TV",
			Description: "43 inch LED smart TV with wall mount included.",
			Price:       400,
			Image:       "https://images.rentease.local/tv-43.jpg",
		},
		{
			Name:        "Double Door Refrigerator",
			Category:    "Refrigerator",
			Description: "300L frost-free double door refrigerator.",
			Price:       550,
			Image:       "https://images.rentease.local/fridge-300l.jpg",
		},
	}

	for _, p := range products {
		product := p
		if err := s.db.Create(&product).Error; err != nil {
			return err
		}
		log.Printf("   Created product: %s", product.Name)
	}

	return nil
}
