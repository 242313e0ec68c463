// Package export renders listing rows as XLSX workbooks
package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentType is the MIME type of the produced workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxSheetName is the Excel limit on sheet name length
const maxSheetName = 31

// Row is one listing record keyed by column
type Row = map[string]any

// Columns returns the columns to export: the preferred ones that occur in
// rows, in the given order, followed by every other column sorted by name.
func Columns(rows []Row, preferred ...string) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		for c := range r {
			seen[c] = true
		}
	}

	cols := make([]string, 0, len(seen))
	for _, c := range preferred {
		if seen[c] {
			cols = append(cols, c)
			delete(seen, c)
		}
	}
	rest := make([]string, 0, len(seen))
	for c := range seen {
		rest = append(rest, c)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// Header turns a column name into a title, "order_date" -> "Order Date"
func Header(col string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(col, "_", " "))
}

// Workbook writes rows to a single-sheet workbook named sheet
func Workbook(sheet string, cols []string, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheetName(sheet)
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), name); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = Header(c)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if len(cols) > 0 {
		if err := styleHeader(f, name, len(cols)); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := make([]any, len(cols))
		for j, c := range cols {
			values[j] = cellValue(r[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleHeader(f *excelize.File, sheet string, n int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(n, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

// cellValue converts driver values into types excelize writes natively
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case decimal.Decimal:
		return t.InexactFloat64()
	default:
		return t
	}
}

func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, s)
	if s == "" {
		return "Export"
	}
	for utf8.RuneCountInString(s) > maxSheetName {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}
