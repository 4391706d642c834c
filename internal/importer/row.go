package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nubikpaper2/finanza/internal/models"
)

// Date layouts are attempted in this exact order; the first one that
// parses the whole string wins. Ambiguous dates like "03/04/2024" resolve
// to the day-first reading because of this fixed order, not by locale
// guessing.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// Snapshot is the immutable rule and category set loaded once per import
// run and threaded through every row. Concurrent edits to rules during a
// run are not reflected mid-run.
type Snapshot struct {
	Rules      []models.CategoryRule
	Categories []models.Category
}

// CategoryByName resolves an explicit category column value by exact
// case-insensitive name, restricted to categories of the row's
// transaction kind.
func (s Snapshot) CategoryByName(name string, txType models.TransactionType) (uint, bool) {
	for _, c := range s.Categories {
		if c.Type == txType && strings.EqualFold(c.Name, name) {
			return c.ID, true
		}
	}
	return 0, false
}

// CategoryName looks up a category's display name for the report.
func (s Snapshot) CategoryName(id uint) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// ParseRow turns one decoded row into a Candidate, or a RowError
// describing why the row cannot be imported. It returns one or the other,
// never both. rowIndex is 1-based over data rows.
//
// An unresolvable explicit category is not fatal: the row proceeds with a
// nil category and falls through to rule resolution.
func ParseRow(row Row, rowIndex int, snapshot Snapshot) (Candidate, *RowError) {
	fail := func(format string, args ...any) (Candidate, *RowError) {
		return Candidate{}, &RowError{RowIndex: rowIndex, Message: fmt.Sprintf(format, args...)}
	}

	for _, col := range requiredColumns {
		if strings.TrimSpace(row[col]) == "" {
			return fail("missing required field %q", col)
		}
	}

	rawDate := strings.TrimSpace(row[ColDate])
	date, ok := parseDate(rawDate)
	if !ok {
		return fail("unparseable date %q", rawDate)
	}

	rawAmount := strings.TrimSpace(row[ColAmount])
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return fail("invalid amount %q", rawAmount)
	}

	rawType := strings.TrimSpace(row[ColType])
	txType, ok := models.ParseTransactionType(rawType)
	if !ok {
		return fail("invalid transaction type %q (expected INCOME or EXPENSE)", rawType)
	}

	c := Candidate{
		RowIndex:    rowIndex,
		Date:        date,
		Description: strings.TrimSpace(row[ColDescription]),
		Amount:      amount,
		Type:        txType,
		Notes:       strings.TrimSpace(row[ColNotes]),
	}

	if name := strings.TrimSpace(row[ColCategory]); name != "" {
		if id, ok := snapshot.CategoryByName(name, txType); ok {
			c.CategoryID = &id
		}
	}

	return c, nil
}

// parseDate tries each layout against the full input string.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount parses a non-negative decimal amount. A decimal comma is
// accepted ("150,50" reads as 150.50); sign lives in the type column, so
// negative amounts are rejected.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount is negative")
	}
	return d, nil
}
