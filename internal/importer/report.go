// Package importer implements the bulk transaction import pipeline: file
// decoding, per-row parsing, rule-based categorization and the partial
// failure report.
package importer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nubikpaper2/finanza/internal/models"
)

// Candidate is a parsed, not-yet-persisted transaction produced from one
// import row. Amount is non-negative; direction is carried by Type.
// CategoryID stays nil until resolved from the explicit column or by the
// rule engine.
type Candidate struct {
	RowIndex    int
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
	CategoryID  *uint
	Notes       string
}

// RowError is the outcome of a row that could not be imported. RowIndex is
// the 1-based position among data rows, header excluded.
type RowError struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.RowIndex, e.Message)
}

// TransactionRecord is one persisted transaction as echoed back in the
// import report, with its category name already resolved.
type TransactionRecord struct {
	ID              uint            `json:"id"`
	Type            models.TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes,omitempty"`
	AccountID       uint            `json:"accountId"`
	CategoryID      *uint           `json:"categoryId"`
	CategoryName    string          `json:"categoryName,omitempty"`
}

// Report summarizes one import run. Imported+Failed always equals Total,
// and Errors has exactly Failed entries. Both Errors and Transactions
// preserve original row order.
type Report struct {
	Total        int                 `json:"total"`
	Imported     int                 `json:"imported"`
	Failed       int                 `json:"failed"`
	Errors       []RowError          `json:"errors"`
	Transactions []TransactionRecord `json:"transactions"`
}
