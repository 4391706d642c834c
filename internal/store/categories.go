package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
)

type CategoryStore struct {
	DB *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{DB: db}
}

func (s *CategoryStore) ForOrganization(orgID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}

// ByName finds a category by exact case-insensitive name within the
// scope. Returns (nil, nil) when no category has that name.
func (s *CategoryStore) ByName(orgID uint, name string) (*models.Category, error) {
	var c models.Category
	err := s.DB.
		Where("organization_id = ? AND LOWER(name) = LOWER(?)", orgID, name).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	return &c, nil
}

// ByID finds a category by id. Returns (nil, nil) when absent.
func (s *CategoryStore) ByID(id uint) (*models.Category, error) {
	var c models.Category
	err := s.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	return &c, nil
}
