package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountCash       AccountType = "CASH"
	AccountBank       AccountType = "BANK"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountInvestment AccountType = "INVESTMENT"
	AccountLoan       AccountType = "LOAN"
	AccountSavings    AccountType = "SAVINGS"
	AccountOther      AccountType = "OTHER"
)

// Account is a money holder (cash box, bank account, card) inside an
// organization. Balance is kept as a decimal to avoid float drift.
type Account struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrganizationID uint            `gorm:"index;not null" json:"organizationId"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Type           AccountType     `gorm:"size:50;not null" json:"type"`
	Balance        decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`
	Currency       string          `gorm:"size:10;default:USD" json:"currency"`
	Description    string          `gorm:"size:500" json:"description"`
	Active         bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Organization Organization `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
