package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// TemplateFilename is the suggested download name, minus extension.
const TemplateFilename = "plantilla_importacion"

var templateHeader = []string{ColDate, ColDescription, ColAmount, ColType, ColCategory, ColNotes}

var templateRows = [][]string{
	{"2024-01-15", "Pago de salario", "3000.00", "INCOME", "Salario", ""},
	{"2024-01-16", "Compra en supermercado", "150.50", "EXPENSE", "Alimentación", "Compra semanal"},
	{"2024-01-17", "Pago de renta", "800.00", "EXPENSE", "Vivienda", ""},
}

// WriteTemplateCSV writes the example import file users download as a
// starting point. A UTF-8 BOM is prepended so spreadsheet tools render
// accented characters correctly.
func WriteTemplateCSV(w io.Writer) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(templateHeader); err != nil {
		return err
	}
	for _, row := range templateRows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplateXLSX writes the same example file as a spreadsheet.
func WriteTemplateXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range templateHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range templateRows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	for i := range templateHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
