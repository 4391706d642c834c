package models

import "time"

// Organization is the scope boundary: accounts, categories and rules
// all hang off one organization and are never visible across it.
type Organization struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	TaxID       string `gorm:"size:50" json:"taxId"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
