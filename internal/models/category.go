package models

import "time"

// Category represents an income/expense category.
type Category struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrganizationID uint            `gorm:"index;not null" json:"organizationId"`
	Name           string          `gorm:"size:64;not null" json:"name"`
	Description    string          `gorm:"size:500" json:"description"`
	Type           TransactionType `gorm:"size:16;index;not null" json:"type"`
	Icon           string          `gorm:"size:16" json:"icon"`
	Color          string          `gorm:"size:16" json:"color"`
	Active         bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Organization Organization `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
