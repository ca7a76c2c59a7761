package loader

import (
	"strings"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/parser"
)

// Discovery is the result of inspecting a freshly decoded workbook: per-tab
// info for the selection step plus seeded vendor prefixes.
type Discovery struct {
	Sheets         []models.SheetInfo
	VendorPrefixes map[string]string
}

// Discover scans each sheet's metadata, marks every tab selected, and
// seeds a default image prefix per vendor (the lowercased vendor key).
// These are the defaults presented before the user edits anything;
// re-running it on the same sheets yields the same result.
func Discover(sheets []models.Sheet) Discovery {
	d := Discovery{VendorPrefixes: make(map[string]string, len(sheets))}

	for _, sheet := range sheets {
		meta := parser.ScanMetadata(sheet.Rows)

		vendorKey := ""
		if meta.VendorCode != nil {
			vendorKey = strings.TrimSpace(*meta.VendorCode)
		}
		if vendorKey == "" {
			vendorKey = strings.TrimSpace(sheet.Name)
		}

		var wallet *string
		if meta.WalletCode != nil && *meta.WalletCode != "" {
			wallet = meta.WalletCode
		}

		d.Sheets = append(d.Sheets, models.SheetInfo{
			Name:       sheet.Name,
			Selected:   true,
			VendorCode: vendorKey,
			WalletCode: wallet,
		})
		if _, ok := d.VendorPrefixes[vendorKey]; !ok {
			d.VendorPrefixes[vendorKey] = strings.ToLower(vendorKey)
		}
	}
	return d
}
