package parser

import "github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"

// Canonical header keys consumed downstream of the column map. Any other
// header present in a sheet is simply ignored.
const (
	KeyGameCode   = "gamecode"
	KeyRank       = "rank"
	KeyGameType   = "gametype"
	KeyCNGameName = "cngamename"
	KeyGameName   = "gamename"
	KeyPlatform   = "platform"
	KeyRTP        = "rtp"
	KeyUpdateDate = "updatedate"
)

// LocateHeaderRow returns the index of the first row containing a cell
// that normalizes to exactly "gamecode". ok is false when no such row
// exists, in which case the sheet cannot be converted.
func LocateHeaderRow(grid models.Grid) (int, bool) {
	for i, row := range grid {
		for _, cell := range row {
			if Normalize(cell) == KeyGameCode {
				return i, true
			}
		}
	}
	return 0, false
}

// BuildColumnMap maps each normalized non-empty header in the row to its
// column index. When a key repeats, the last occurrence wins.
func BuildColumnMap(headerRow []any) map[string]int {
	m := make(map[string]int, len(headerRow))
	for idx, cell := range headerRow {
		if key := Normalize(cell); key != "" {
			m[key] = idx
		}
	}
	return m
}
