package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/parser"
)

// LoadCSV reads a csv file as a single-sheet workbook. The sheet name is
// the file's base name without its extension, which then also serves as
// the fallback vendor code.
func LoadCSV(path string) ([]models.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine, the grid has no fixed width

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoUsableSheets
	}

	grid := make(models.Grid, 0, len(records))
	for _, record := range records {
		cells := make([]any, len(record))
		for i, cell := range record {
			if cell == "" {
				continue
			}
			cells[i] = parser.ParseValue(cell)
		}
		grid = append(grid, cells)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []models.Sheet{{Name: name, Rows: grid}}, nil
}
