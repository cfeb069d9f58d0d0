package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/config"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.StylistProfile{},
		&models.Category{},
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedCategories(db)

	return db
}

// seedCategories keeps the fixed category list present after a fresh
// migration. Inserts are idempotent on the unique slug.
func seedCategories(db *gorm.DB) {
	seed := []models.Category{
		{Name: "Hair", Slug: "hair"},
		{Name: "Nails", Slug: "nails"},
		{Name: "Makeup", Slug: "makeup"},
		{Name: "Skincare", Slug: "skincare"},
		{Name: "Barber", Slug: "barber"},
	}
	for _, cat := range seed {
		var count int64
		db.Model(&models.Category{}).Where("slug = ?", cat.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&cat).Error; err != nil {
				log.Printf("failed to seed category %q: %v", cat.Slug, err)
			}
		}
	}
}
