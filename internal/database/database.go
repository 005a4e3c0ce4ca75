package database

import (
	"fmt"

	"github.com/widyalab/landing-api/internal/config"
	"github.com/widyalab/landing-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration and
// first-boot seeding.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.ResolveDSN(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		if err := Seed(db, cfg.SeedAdminPassword); err != nil {
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminModel{},
		&models.LogModel{},
		&models.StaffModel{},
		&models.NewsModel{},
		&models.AnnouncementModel{},
		&models.AgendaModel{},
		&models.InternModel{},
		&models.ProjectModel{},
		&models.CategoryModel{},
		&models.ProjectCategoryModel{},
		&models.ProjectMemberModel{},
		&models.TestimonyModel{},
		&models.PartnerModel{},
		&models.BannerModel{},
		&models.StatisticModel{},
	)
}

// Seed creates the master admin account and the default project categories
// when the store is empty.
func Seed(db *gorm.DB, masterPassword string) error {
	var count int64
	if err := db.Model(&models.AdminModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		master := models.AdminModel{
			Username:     "master admin",
			PasswordHash: string(hash),
			Role:         models.RoleMasterAdmin,
		}
		if err := db.Create(&master).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Internship", "Researchship"} {
		if err := db.Where(models.CategoryModel{Name: name}).
			FirstOrCreate(&models.CategoryModel{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
