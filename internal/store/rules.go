// Package store provides the SQLite-backed collaborators the rule engine
// and import pipeline depend on: rule, category, account and transaction
// persistence scoped by organization.
package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
)

type RuleStore struct {
	DB *gorm.DB
}

func NewRuleStore(db *gorm.DB) *RuleStore {
	return &RuleStore{DB: db}
}

// ActiveForOrganization returns the organization's active rules. The
// result is already in evaluation order (priority descending, id
// ascending), though the engine re-sorts and does not rely on it.
func (s *RuleStore) ActiveForOrganization(orgID uint) ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	err := s.DB.
		Where("organization_id = ? AND active = ?", orgID, true).
		Order("priority DESC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rules, nil
}

// ForOrganization returns all rules in the scope, active or not.
func (s *RuleStore) ForOrganization(orgID uint) ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	err := s.DB.
		Where("organization_id = ?", orgID).
		Order("priority DESC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rules, nil
}
