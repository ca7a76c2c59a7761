package parser

import (
	"testing"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
)

func strValue(t *testing.T, p *string) string {
	t.Helper()
	if p == nil {
		t.Fatal("expected a value, got nil")
	}
	return *p
}

func TestScanMetadata(t *testing.T) {
	grid := models.Grid{
		{"Vendor Code:", "ABC"},
		{"Wallet Code：", nil, "", " W88 "},
		{"Game Code", "Rank"},
	}

	meta := ScanMetadata(grid)
	if got := strValue(t, meta.VendorCode); got != "ABC" {
		t.Errorf("vendor code = %q, expected %q", got, "ABC")
	}
	if got := strValue(t, meta.WalletCode); got != "W88" {
		t.Errorf("wallet code = %q, expected %q (value scan must skip gaps and trim)", got, "W88")
	}
}

func TestScanMetadataBothInOneRow(t *testing.T) {
	grid := models.Grid{
		{"Vendor Code", "PG", "Wallet Code", "WLT"},
	}

	meta := ScanMetadata(grid)
	if got := strValue(t, meta.VendorCode); got != "PG" {
		t.Errorf("vendor code = %q, expected %q", got, "PG")
	}
	if got := strValue(t, meta.WalletCode); got != "WLT" {
		t.Errorf("wallet code = %q, expected %q", got, "WLT")
	}
}

func TestScanMetadataLabelPrefixMatch(t *testing.T) {
	// Labels match by prefix on the normalized form.
	grid := models.Grid{
		{"Vendor Code (internal):", "XYZ"},
	}

	meta := ScanMetadata(grid)
	if got := strValue(t, meta.VendorCode); got != "XYZ" {
		t.Errorf("vendor code = %q, expected %q", got, "XYZ")
	}
}

func TestScanMetadataFirstOccurrenceIsFinal(t *testing.T) {
	// The first "Vendor Code" label has no value in its row; the later one
	// must be ignored anyway.
	grid := models.Grid{
		{"Vendor Code:"},
		{"Vendor Code:", "LATE"},
	}

	meta := ScanMetadata(grid)
	if meta.VendorCode != nil {
		t.Errorf("vendor code = %q, expected nil (second label occurrence must be ignored)", *meta.VendorCode)
	}
}

func TestScanMetadataSameRowOnly(t *testing.T) {
	// Label and value on different rows are not a pair.
	grid := models.Grid{
		{"Wallet Code:"},
		{"W88"},
	}

	meta := ScanMetadata(grid)
	if meta.WalletCode != nil {
		t.Errorf("wallet code = %q, expected nil", *meta.WalletCode)
	}
}

func TestScanMetadataEmptyGrid(t *testing.T) {
	meta := ScanMetadata(models.Grid{})
	if meta.VendorCode != nil || meta.WalletCode != nil {
		t.Error("empty grid must yield empty metadata")
	}
}
