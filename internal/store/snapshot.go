package store

import (
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/importer"
)

// LoadSnapshot reads the organization's active rules and categories once,
// for use as the import run's consistent snapshot.
func LoadSnapshot(db *gorm.DB, orgID uint) (importer.Snapshot, error) {
	rules, err := NewRuleStore(db).ActiveForOrganization(orgID)
	if err != nil {
		return importer.Snapshot{}, err
	}
	categories, err := NewCategoryStore(db).ForOrganization(orgID)
	if err != nil {
		return importer.Snapshot{}, err
	}
	return importer.Snapshot{Rules: rules, Categories: categories}, nil
}
