package importer

import (
	"bytes"
	"testing"
)

func TestTemplateCSV_DecodesThroughOwnPipeline(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplateCSV(&buf); err != nil {
		t.Fatalf("WriteTemplateCSV error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("template CSV should start with a UTF-8 BOM")
	}

	rows, err := DecodeCSV(&buf)
	if err != nil {
		t.Fatalf("DecodeCSV error = %v", err)
	}
	if len(rows) != len(templateRows) {
		t.Fatalf("decoded %d rows, want %d", len(rows), len(templateRows))
	}
	if rows[0][ColType] != "INCOME" || rows[1][ColCategory] != "Alimentación" {
		t.Errorf("template content changed: %v", rows)
	}
}

func TestTemplateXLSX_DecodesThroughOwnPipeline(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplateXLSX(&buf); err != nil {
		t.Fatalf("WriteTemplateXLSX error = %v", err)
	}

	rows, err := DecodeXLSX(&buf)
	if err != nil {
		t.Fatalf("DecodeXLSX error = %v", err)
	}
	if len(rows) != len(templateRows) {
		t.Fatalf("decoded %d rows, want %d", len(rows), len(templateRows))
	}
	for i, want := range templateRows {
		if rows[i][ColDate] != want[0] {
			t.Errorf("row %d fecha = %q, want %q", i+1, rows[i][ColDate], want[0])
		}
	}
}

func TestTemplateRows_AllParse(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplateCSV(&buf); err != nil {
		t.Fatal(err)
	}
	rows, err := DecodeCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}

	for i, row := range rows {
		if _, rowErr := ParseRow(row, i+1, testSnapshot()); rowErr != nil {
			t.Errorf("template row %d does not parse: %v", i+1, rowErr)
		}
	}
}
