package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"github.com/xuri/excelize/v2"

	"budget-report/src/pkg/budget"
)

/*
Load returns the entries stored at path, or the embedded table when path is empty.

The loader is picked by extension:
  - .csv  : header row "code,name,value"
  - .xlsx : first sheet, columns code/name/value, first row is a header
*/
func Load(path string) (entries []budget.Entry, e *xerr.Error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		entries = Default()
		tl.Log(tl.Info1, palette.Cyan, "Using %s dataset with '%d' entries", "embedded", len(entries))
		return entries, nil
	}

	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".csv":
		entries, e = loadCSV(trimmed)
	case ".xlsx":
		entries, e = loadXLSX(trimmed)
	default:
		err := fmt.Errorf("unsupported dataset extension: '%s'", filepath.Ext(trimmed))
		e = xerr.NewError(err, "dataset must be .csv or .xlsx", trimmed)
		return nil, e
	}
	if e != nil {
		return nil, e
	}

	tl.Log(tl.Info1, palette.Cyan, "Loaded '%d' entries from '%s'", len(entries), trimmed)
	return entries, nil
}

func loadCSV(path string) (entries []budget.Entry, e *xerr.Error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		e = xerr.NewError(openErr, "open dataset CSV file", path)
		return nil, e
	}
	defer func() {
		_ = file.Close()
	}()

	entries = make([]budget.Entry, 0)
	unmarshalErr := gocsv.UnmarshalFile(file, &entries)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal dataset CSV", path)
		return nil, e
	}

	return trimEntries(entries), nil
}

func loadXLSX(path string) (entries []budget.Entry, e *xerr.Error) {
	workbook, openErr := excelize.OpenFile(path)
	if openErr != nil {
		e = xerr.NewError(openErr, "open dataset XLSX file", path)
		return nil, e
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		err := fmt.Errorf("workbook has no sheets")
		e = xerr.NewError(err, "read dataset XLSX", path)
		return nil, e
	}

	rows, rowsErr := workbook.GetRows(sheets[0])
	if rowsErr != nil {
		e = xerr.NewError(rowsErr, "read rows from first sheet", fmt.Sprintf("%s [%s]", path, sheets[0]))
		return nil, e
	}

	entries = make([]budget.Entry, 0, len(rows))
	for rowIndex, row := range rows {
		if rowIndex == 0 || isBlankRow(row) {
			continue
		}
		if len(row) < 3 {
			err := fmt.Errorf("row %d has %d columns, expected code, name and value", rowIndex+1, len(row))
			e = xerr.NewError(err, "parse dataset XLSX row", path)
			return nil, e
		}
		entries = append(entries, budget.Entry{Code: row[0], Name: row[1], RawValue: row[2]})
	}

	return trimEntries(entries), nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// values are left alone, money.Parse trims them itself
func trimEntries(entries []budget.Entry) []budget.Entry {
	for index := range entries {
		entries[index].Code = strings.TrimSpace(entries[index].Code)
		entries[index].Name = strings.TrimSpace(entries[index].Name)
	}
	return entries
}
