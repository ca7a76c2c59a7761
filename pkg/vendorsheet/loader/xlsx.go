// Package loader decodes workbooks into the grid shape the conversion
// pipeline consumes. Any decoder producing that shape is substitutable;
// this one reads xlsx through excelize and csv through the standard
// library.
package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/parser"
)

// ErrNoUsableSheets indicates the workbook decoded cleanly but every tab
// was empty.
var ErrNoUsableSheets = errors.New("no usable sheets found in this file")

// LoadWorkbook reads an xlsx file into ordered sheets. Tabs without any
// rows are dropped.
func LoadWorkbook(path string) ([]models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return sheetsFrom(f)
}

// ReadWorkbook decodes an xlsx stream, e.g. an uploaded request body.
func ReadWorkbook(r io.Reader) ([]models.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()
	return sheetsFrom(f)
}

func sheetsFrom(f *excelize.File) ([]models.Sheet, error) {
	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}

		grid := make(models.Grid, 0, len(rows))
		for _, row := range rows {
			cells := make([]any, len(row))
			for i, cell := range row {
				if cell == "" {
					continue
				}
				cells[i] = parser.ParseValue(cell)
			}
			grid = append(grid, cells)
		}
		sheets = append(sheets, models.Sheet{Name: name, Rows: grid})
	}
	if len(sheets) == 0 {
		return nil, ErrNoUsableSheets
	}
	return sheets, nil
}
