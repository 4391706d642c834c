package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/nubikpaper2/finanza/internal/models"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Categories: []models.Category{
			{ID: 1, Name: "Salario", Type: models.TypeIncome},
			{ID: 2, Name: "Alimentación", Type: models.TypeExpense},
			{ID: 3, Name: "Vivienda", Type: models.TypeExpense},
		},
	}
}

func validRow() Row {
	return Row{
		ColDate:        "2024-01-15",
		ColDescription: "Compra en supermercado",
		ColAmount:      "150.50",
		ColType:        "EXPENSE",
	}
}

func TestParseRow_Valid(t *testing.T) {
	c, rowErr := ParseRow(validRow(), 1, testSnapshot())
	if rowErr != nil {
		t.Fatalf("ParseRow error = %v", rowErr)
	}
	if c.RowIndex != 1 {
		t.Errorf("RowIndex = %d, want 1", c.RowIndex)
	}
	if want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC); !c.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", c.Date, want)
	}
	if c.Amount.String() != "150.5" {
		t.Errorf("Amount = %s, want 150.5", c.Amount)
	}
	if c.Type != models.TypeExpense {
		t.Errorf("Type = %s, want EXPENSE", c.Type)
	}
	if c.CategoryID != nil {
		t.Error("CategoryID should stay nil without a categoria column")
	}
}

func TestParseRow_MissingRequiredFields(t *testing.T) {
	for _, col := range []string{ColDate, ColDescription, ColAmount, ColType} {
		row := validRow()
		row[col] = "  "
		_, rowErr := ParseRow(row, 3, testSnapshot())
		if rowErr == nil {
			t.Errorf("missing %q: expected a row error", col)
			continue
		}
		if rowErr.RowIndex != 3 {
			t.Errorf("missing %q: RowIndex = %d, want 3", col, rowErr.RowIndex)
		}
		if !strings.Contains(rowErr.Message, col) {
			t.Errorf("missing %q: message %q does not name the field", col, rowErr.Message)
		}
	}
}

func TestParseRow_DateFormatPrecedence(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		// ISO first.
		{"2024-03-04", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		// Ambiguous day/month resolves day-first by attempt order.
		{"03/04/2024", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
		// 04/13 has no valid day-first reading, so MM/DD kicks in.
		{"04/13/2024", time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)},
		{"25/12/2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"25-12-2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2024/12/25", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		row := validRow()
		row[ColDate] = tc.raw
		c, rowErr := ParseRow(row, 1, testSnapshot())
		if rowErr != nil {
			t.Errorf("date %q: unexpected error %v", tc.raw, rowErr)
			continue
		}
		if !c.Date.Equal(tc.want) {
			t.Errorf("date %q parsed as %v, want %v", tc.raw, c.Date, tc.want)
		}
	}
}

func TestParseRow_UnparseableDate(t *testing.T) {
	row := validRow()
	row[ColDate] = "15 de enero"
	_, rowErr := ParseRow(row, 2, testSnapshot())
	if rowErr == nil {
		t.Fatal("expected a row error for an unparseable date")
	}
	if !strings.Contains(rowErr.Message, "15 de enero") {
		t.Errorf("message %q should quote the raw date", rowErr.Message)
	}
}

func TestParseRow_Amounts(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"150.50", "150.5", false},
		{"150,50", "150.5", false}, // decimal comma
		{"0", "0", false},
		{"-25.00", "", true}, // sign belongs in tipo
		{"abc", "", true},
		{"1,234.56", "", true}, // thousands separators are not supported
	}
	for _, tc := range cases {
		row := validRow()
		row[ColAmount] = tc.raw
		c, rowErr := ParseRow(row, 1, testSnapshot())
		if tc.wantErr {
			if rowErr == nil {
				t.Errorf("amount %q: expected a row error", tc.raw)
			}
			continue
		}
		if rowErr != nil {
			t.Errorf("amount %q: unexpected error %v", tc.raw, rowErr)
			continue
		}
		if c.Amount.String() != tc.want {
			t.Errorf("amount %q parsed as %s, want %s", tc.raw, c.Amount, tc.want)
		}
	}
}

func TestParseRow_TypeIsCaseSensitive(t *testing.T) {
	for _, raw := range []string{"income", "Expense", "TRANSFER", "GASTO"} {
		row := validRow()
		row[ColType] = raw
		if _, rowErr := ParseRow(row, 1, testSnapshot()); rowErr == nil {
			t.Errorf("type %q should be rejected", raw)
		}
	}
}

func TestParseRow_ExplicitCategoryResolved(t *testing.T) {
	row := validRow()
	row[ColCategory] = "alimentación" // case differs from the snapshot
	c, rowErr := ParseRow(row, 1, testSnapshot())
	if rowErr != nil {
		t.Fatalf("ParseRow error = %v", rowErr)
	}
	if c.CategoryID == nil || *c.CategoryID != 2 {
		t.Errorf("CategoryID = %v, want 2", c.CategoryID)
	}
}

func TestParseRow_CategoryFilteredByType(t *testing.T) {
	// "Salario" exists but is an INCOME category; an EXPENSE row must not
	// resolve to it.
	row := validRow()
	row[ColCategory] = "Salario"
	c, rowErr := ParseRow(row, 1, testSnapshot())
	if rowErr != nil {
		t.Fatalf("ParseRow error = %v", rowErr)
	}
	if c.CategoryID != nil {
		t.Errorf("CategoryID = %d, want nil", *c.CategoryID)
	}
}

func TestParseRow_UnknownCategoryIsNotFatal(t *testing.T) {
	row := validRow()
	row[ColCategory] = "Nonexistent"
	c, rowErr := ParseRow(row, 1, testSnapshot())
	if rowErr != nil {
		t.Fatalf("unknown category must not fail the row, got %v", rowErr)
	}
	if c.CategoryID != nil {
		t.Errorf("CategoryID = %d, want nil (falls through to rules)", *c.CategoryID)
	}
}

func TestParseRow_NotesCopiedVerbatim(t *testing.T) {
	row := validRow()
	row[ColNotes] = "Compra semanal"
	c, rowErr := ParseRow(row, 1, testSnapshot())
	if rowErr != nil {
		t.Fatalf("ParseRow error = %v", rowErr)
	}
	if c.Notes != "Compra semanal" {
		t.Errorf("Notes = %q", c.Notes)
	}
}
