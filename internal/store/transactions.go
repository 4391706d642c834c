package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/importer"
	"github.com/nubikpaper2/finanza/internal/models"
)

type TransactionStore struct {
	DB *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{DB: db}
}

var _ importer.TransactionStore = (*TransactionStore)(nil)

// Persist writes one candidate transaction against an account and applies
// it to the account balance (income adds, expense subtracts), atomically.
func (s *TransactionStore) Persist(accountID uint, c importer.Candidate) (models.Transaction, error) {
	var tx models.Transaction

	err := s.DB.Transaction(func(db *gorm.DB) error {
		var account models.Account
		if err := db.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("account %d not found", accountID)
			}
			return fmt.Errorf("load account %d: %w", accountID, err)
		}
		if !account.Active {
			return fmt.Errorf("account %q is inactive", account.Name)
		}

		tx = models.Transaction{
			OrganizationID:  account.OrganizationID,
			AccountID:       account.ID,
			CategoryID:      c.CategoryID,
			Type:            c.Type,
			Amount:          c.Amount,
			TransactionDate: c.Date,
			Description:     c.Description,
			Notes:           c.Notes,
		}
		if err := db.Create(&tx).Error; err != nil {
			return fmt.Errorf("save transaction: %w", err)
		}

		balance := account.Balance
		if c.Type == models.TypeIncome {
			balance = balance.Add(c.Amount)
		} else {
			balance = balance.Sub(c.Amount)
		}
		if err := db.Model(&account).Update("balance", balance).Error; err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// ForOrganization lists transactions in the scope, newest first,
// optionally filtered by account and/or category.
func (s *TransactionStore) ForOrganization(orgID uint, accountID, categoryID *uint) ([]models.Transaction, error) {
	q := s.DB.Where("organization_id = ?", orgID)
	if accountID != nil {
		q = q.Where("account_id = ?", *accountID)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var txs []models.Transaction
	if err := q.Order("transaction_date DESC, id DESC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txs, nil
}
