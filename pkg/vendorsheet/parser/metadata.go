package parser

import (
	"strings"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
)

const (
	labelVendorCode = "vendorcode"
	labelWalletCode = "walletcode"
)

// ScanMetadata walks every row top-to-bottom, every cell left-to-right,
// looking for labeled key-value pairs. A cell is a label when its
// normalized form starts with "vendorcode" or "walletcode"; the value is
// the trimmed string form of the first non-empty cell to its right in the
// same row. Only the first occurrence of each label counts, even when its
// value scan comes up empty. The scan stops once both labels were seen.
func ScanMetadata(grid models.Grid) models.Metadata {
	var meta models.Metadata
	var vendorSeen, walletSeen bool

	for _, row := range grid {
		for j, cell := range row {
			if IsFalsy(cell) {
				continue
			}
			norm := NormalizeLabel(cell)
			if !walletSeen && strings.HasPrefix(norm, labelWalletCode) {
				walletSeen = true
				meta.WalletCode = nextNonEmpty(row, j+1)
			}
			if !vendorSeen && strings.HasPrefix(norm, labelVendorCode) {
				vendorSeen = true
				meta.VendorCode = nextNonEmpty(row, j+1)
			}
			if vendorSeen && walletSeen {
				return meta
			}
		}
	}
	return meta
}

// nextNonEmpty returns the trimmed string form of the first non-empty cell
// at or after column from, or nil when the row runs out first.
func nextNonEmpty(row []any, from int) *string {
	for k := from; k < len(row); k++ {
		if IsEmpty(row[k]) {
			continue
		}
		v := strings.TrimSpace(CellString(row[k]))
		return &v
	}
	return nil
}
