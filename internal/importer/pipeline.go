package importer

import (
	"io"

	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/rules"
)

// TransactionStore persists one candidate transaction against an account.
// Implemented elsewhere; a failed persist is reported as a row error, not
// a run failure.
type TransactionStore interface {
	Persist(accountID uint, c Candidate) (models.Transaction, error)
}

// Pipeline runs bulk imports: decode, parse each row, auto-categorize
// uncategorized rows through the rule engine, persist, and assemble the
// report. One bad row never blocks the rest.
type Pipeline struct {
	Store TransactionStore
}

func NewPipeline(store TransactionStore) *Pipeline {
	return &Pipeline{Store: store}
}

// Import decodes the uploaded file and imports its rows. A decoding
// failure (unreadable file, missing header row) returns an error and no
// report; everything after decoding is per-row partial failure.
func (p *Pipeline) Import(r io.Reader, format Format, accountID uint, snapshot Snapshot) (*Report, error) {
	rows, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return p.ImportRows(rows, accountID, snapshot), nil
}

// ImportRows imports an already-decoded row sequence. Rows are processed
// strictly in order and independently of each other; Errors and
// Transactions in the report keep that order.
func (p *Pipeline) ImportRows(rows []Row, accountID uint, snapshot Snapshot) *Report {
	report := &Report{
		Total:        len(rows),
		Errors:       []RowError{},
		Transactions: []TransactionRecord{},
	}

	for i, row := range rows {
		rowIndex := i + 1

		candidate, rowErr := ParseRow(row, rowIndex, snapshot)
		if rowErr != nil {
			report.Failed++
			report.Errors = append(report.Errors, *rowErr)
			continue
		}

		if candidate.CategoryID == nil {
			if id, ok := rules.Resolve(snapshot.Rules, candidate.Description, candidate.Amount); ok {
				candidate.CategoryID = &id
			}
		}

		tx, err := p.Store.Persist(accountID, candidate)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{
				RowIndex: rowIndex,
				Message:  "could not save transaction: " + err.Error(),
			})
			continue
		}

		record := TransactionRecord{
			ID:              tx.ID,
			Type:            tx.Type,
			Amount:          tx.Amount,
			TransactionDate: tx.TransactionDate.Format("2006-01-02"),
			Description:     tx.Description,
			Notes:           tx.Notes,
			AccountID:       tx.AccountID,
			CategoryID:      tx.CategoryID,
		}
		if tx.CategoryID != nil {
			record.CategoryName = snapshot.CategoryName(*tx.CategoryID)
		}

		report.Imported++
		report.Transactions = append(report.Transactions, record)
	}

	return report
}
