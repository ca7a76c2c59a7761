package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `baseUrl: https://cdn.example.com
imageLang: zh
sheets:
  - PGSoft
  - JILI
vendors:
  PGSoft:
    prefix: pg-new
  JILI:
    prefix: ""
`
	path := filepath.Join(t.TempDir(), "convert.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	opts := p.Options()
	if opts.BaseURL != "https://cdn.example.com" || opts.ImageLang != "zh" {
		t.Errorf("options = %+v", opts)
	}
	if opts.VendorPrefixes["PGSoft"] != "pg-new" {
		t.Errorf("prefixes = %v", opts.VendorPrefixes)
	}
	if _, ok := opts.VendorPrefixes["JILI"]; ok {
		t.Error("empty prefix entries must be dropped so the vendor-segment default applies")
	}
	if len(p.Sheets) != 2 {
		t.Errorf("sheets = %v", p.Sheets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing profile")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("baseUrl: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
