package models

import "time"

// RuleType is the closed set of categorization conditions. Adding a new
// kind of rule means adding a constant here and a case to the matcher.
type RuleType string

const (
	RuleContains    RuleType = "CONTAINS"
	RuleStartsWith  RuleType = "STARTS_WITH"
	RuleEndsWith    RuleType = "ENDS_WITH"
	RuleExactMatch  RuleType = "EXACT_MATCH"
	RuleRegex       RuleType = "REGEX"
	RuleAmountRange RuleType = "AMOUNT_RANGE"
)

// RuleTypes lists every valid rule type, in definition order.
var RuleTypes = []RuleType{
	RuleContains,
	RuleStartsWith,
	RuleEndsWith,
	RuleExactMatch,
	RuleRegex,
	RuleAmountRange,
}

// CategoryRule assigns a category to transactions whose description (or
// amount, for AMOUNT_RANGE) matches Pattern. Higher Priority rules are
// evaluated first; the first match wins.
type CategoryRule struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	OrganizationID uint     `gorm:"index;not null" json:"organizationId"`
	Name           string   `gorm:"size:200;not null" json:"name"`
	Description    string   `gorm:"size:500" json:"description"`
	Type           RuleType `gorm:"size:20;not null" json:"type"`
	Pattern        string   `gorm:"size:500;not null" json:"pattern"`
	CategoryID     uint     `gorm:"index;not null" json:"categoryId"`
	Active         bool     `gorm:"not null;default:true" json:"active"`
	Priority       int      `gorm:"not null;default:0" json:"priority"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Category Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
