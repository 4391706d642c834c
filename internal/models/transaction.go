package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType validates a raw type string. Comparison is
// case-sensitive: import files must spell INCOME/EXPENSE exactly.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), true
	}
	return "", false
}

// Transaction is a single recorded income or expense. Amount is always
// non-negative; the direction is carried by Type.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrganizationID uint            `gorm:"index;not null" json:"organizationId"`
	AccountID      uint            `gorm:"index;not null" json:"accountId"`
	CategoryID     *uint           `gorm:"index" json:"categoryId"`
	Type           TransactionType `gorm:"size:16;index;not null" json:"type"`
	Amount         decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	TransactionDate time.Time      `gorm:"index;not null" json:"transactionDate"`
	Description    string          `gorm:"size:500;not null" json:"description"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Account  Account   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
