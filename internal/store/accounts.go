package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
)

type AccountStore struct {
	DB *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{DB: db}
}

func (s *AccountStore) ForOrganization(orgID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := s.DB.
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return accounts, nil
}

// ByID finds an account inside the scope. Returns (nil, nil) when the
// account does not exist or belongs to a different organization.
func (s *AccountStore) ByID(orgID, id uint) (*models.Account, error) {
	var a models.Account
	err := s.DB.
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account %d: %w", id, err)
	}
	return &a, nil
}

func (s *AccountStore) Create(a *models.Account) error {
	if err := s.DB.Create(a).Error; err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}
