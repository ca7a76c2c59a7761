// Package models defines the data shapes shared by the conversion pipeline.
package models

// Grid is one sheet's cell matrix as produced by a workbook decoder.
// A cell is a string, an int64, a float64, a bool, or nil when absent.
// Rows may have differing lengths. The pipeline never mutates a Grid.
type Grid [][]any

// Sheet pairs a tab name with its cell grid.
type Sheet struct {
	Name string
	Rows Grid
}

// Metadata holds the labeled values scanned from a sheet's cells. A nil
// field means the label was never found, or was found with no value to its
// right in the same row.
type Metadata struct {
	VendorCode *string
	WalletCode *string
}

// SheetInfo describes one discovered tab before conversion: its detected
// vendor and wallet codes plus whether the user has it selected. Freshly
// discovered tabs start selected.
type SheetInfo struct {
	Name       string  `json:"name"`
	Selected   bool    `json:"selected"`
	VendorCode string  `json:"vendorCode"`
	WalletCode *string `json:"walletCode"`
}
