package vendorsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/parser"
)

// ConvertBatch converts the given sheets, in order, into one export
// document. Every bundle shares a single export timestamp. Sheets that
// cannot be converted are reported as skip diagnostics and left out of the
// document; they never abort the batch.
func ConvertBatch(sheets []models.Sheet, opts Options) (*models.ExportDocument, []SheetSkip) {
	exportDate := time.Now().UTC().Format(time.RFC3339)
	return convertBatchAt(sheets, opts, exportDate)
}

func convertBatchAt(sheets []models.Sheet, opts Options, exportDate string) (*models.ExportDocument, []SheetSkip) {
	doc := &models.ExportDocument{Vendors: make([]models.VendorBundle, 0, len(sheets))}
	var skips []SheetSkip

	for _, sheet := range sheets {
		bundle, skip := ConvertSheet(sheet.Name, sheet.Rows, opts)
		if skip != nil {
			skips = append(skips, *skip)
			continue
		}
		bundle.ExportDate = exportDate
		doc.Vendors = append(doc.Vendors, *bundle)
	}
	return doc, skips
}

// ConvertSheet runs the pipeline for one tab: scan metadata, locate the
// header row, map columns, then convert every row below the header. It
// returns a skip diagnostic instead of a bundle when the sheet has no
// header row or yields no records. The returned bundle has no ExportDate;
// the batch stamps it.
func ConvertSheet(sheetName string, grid models.Grid, opts Options) (*models.VendorBundle, *SheetSkip) {
	meta := parser.ScanMetadata(grid)

	headerIdx, ok := parser.LocateHeaderRow(grid)
	if !ok {
		return nil, &SheetSkip{SheetName: sheetName, Reason: SkipNoHeaderRow}
	}
	columns := parser.BuildColumnMap(grid[headerIdx])

	vendorCode := ""
	if meta.VendorCode != nil {
		vendorCode = strings.TrimSpace(*meta.VendorCode)
	}
	if vendorCode == "" {
		vendorCode = strings.TrimSpace(sheetName)
	}

	var walletCode *string
	if meta.WalletCode != nil && *meta.WalletCode != "" {
		walletCode = meta.WalletCode
	}

	var games []models.Game
	for _, row := range grid[headerIdx+1:] {
		game, ok := convertRow(row, columns, vendorCode, len(games)+1, opts)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	if len(games) == 0 {
		return nil, &SheetSkip{SheetName: sheetName, Reason: SkipNoRecords}
	}

	return &models.VendorBundle{
		VendorCode: vendorCode,
		WalletCode: walletCode,
		TotalGames: len(games),
		Games:      games,
	}, nil
}

// convertRow maps one data row to a game record. ok is false for rows that
// are entirely empty or whose game-code cell is falsy; such rows produce
// nothing. positionalRank is the 1-based rank this record gets when the
// sheet has no usable rank value for it.
func convertRow(row []any, columns map[string]int, vendorCode string, positionalRank int, opts Options) (models.Game, bool) {
	empty := true
	for _, cell := range row {
		if !parser.IsEmpty(cell) {
			empty = false
			break
		}
	}
	if empty {
		return models.Game{}, false
	}

	gameCode := cellAt(row, columns, parser.KeyGameCode)
	if parser.IsFalsy(gameCode) {
		return models.Game{}, false
	}
	code := parser.CellString(gameCode)

	var name *string
	for _, key := range []string{parser.KeyCNGameName, parser.KeyGameName} {
		if v := cellAt(row, columns, key); !parser.IsFalsy(v) {
			s := parser.CellString(v)
			name = &s
			break
		}
	}

	var category *string
	if v := cellAt(row, columns, parser.KeyGameType); !parser.IsFalsy(v) {
		s := strings.ToLower(parser.CellString(v))
		category = &s
	}

	return models.Game{
		VendorCode: vendorCode,
		Code:       code,
		Name:       name,
		Image:      BuildImageURL(vendorCode, code, opts),
		Category:   category,
		Platform:   cellAt(row, columns, parser.KeyPlatform),
		Turnover:   0.0,
		Sort:       sortValue(cellAt(row, columns, parser.KeyRank), positionalRank),
		RTP:        cellAt(row, columns, parser.KeyRTP),
		UpdateDate: cellAt(row, columns, parser.KeyUpdateDate),
	}, true
}

// cellAt returns the cell under a canonical column key, or nil when the
// column is unmapped or the row is too short to reach it.
func cellAt(row []any, columns map[string]int, key string) any {
	idx, ok := columns[key]
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// sortValue prefers an explicit rank: a cell that is already numeric is
// used as-is, a non-empty string is parsed. A missing rank or a failed
// parse falls back to the positional rank rather than propagating a
// non-number.
func sortValue(rank any, positionalRank int) float64 {
	if n, ok := parser.Numeric(rank); ok {
		return n
	}
	if !parser.IsFalsy(rank) {
		if n, err := strconv.ParseFloat(strings.TrimSpace(parser.CellString(rank)), 64); err == nil {
			return n
		}
	}
	return float64(positionalRank)
}
