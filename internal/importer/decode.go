package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Expected column names. Matching is case-insensitive on the header row.
const (
	ColDate        = "fecha"
	ColDescription = "descripcion"
	ColAmount      = "monto"
	ColType        = "tipo"
	ColCategory    = "categoria"
	ColNotes       = "notas"
)

var requiredColumns = []string{ColDate, ColDescription, ColAmount, ColType}

// ErrDecode marks input that could not be decoded at all (unreadable file,
// missing header row). Unlike row-level failures it aborts the whole run.
var ErrDecode = errors.New("undecodable import file")

// Format identifies the tabular encoding of an uploaded file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatForFilename picks the decoder for an uploaded file name.
func FormatForFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrDecode, filepath.Ext(name))
	}
}

// Row is one data row keyed by normalized column name. Absent optional
// columns are simply missing keys.
type Row map[string]string

// Decode reads the whole file into an ordered sequence of rows. CSV and
// spreadsheet inputs yield the same row shape.
func Decode(r io.Reader, format Format) ([]Row, error) {
	switch format {
	case FormatCSV:
		return DecodeCSV(r)
	case FormatXLSX:
		return DecodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrDecode, format)
	}
}

// DecodeCSV decodes a delimited text upload. The first record must be the
// header row and must name all required columns.
func DecodeCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrDecode)
	}
	return assemble(records[0], records[1:])
}

// DecodeXLSX decodes a spreadsheet upload. Only the first sheet is read;
// its first row must be the header row.
func DecodeXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrDecode, sheets[0])
	}
	return assemble(records[0], records[1:])
}

// assemble maps raw records onto named rows using the header row. Rows
// that are entirely empty (blank spreadsheet lines) are dropped.
func assemble(header []string, records [][]string) ([]Row, error) {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}
	for _, req := range requiredColumns {
		found := false
		for _, c := range columns {
			if c == req {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: header row is missing column %q", ErrDecode, req)
		}
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		empty := true
		for _, v := range record {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(Row, len(columns))
		for i, c := range columns {
			if c == "" {
				continue
			}
			if i < len(record) {
				row[c] = strings.TrimSpace(record[i])
			} else {
				row[c] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeHeader lowercases a header cell and strips the UTF-8 BOM that
// spreadsheet tools prepend to the first column of CSV exports.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
