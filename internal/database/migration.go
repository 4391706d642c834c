package database

import (
	"fmt"

	"github.com/nubikpaper2/finanza/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Organization{},
		&models.Account{},
		&models.Category{},
		&models.CategoryRule{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
