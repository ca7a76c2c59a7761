package vendorsheet

import (
	"strings"
	"testing"
)

func TestBuildImageURLDefaults(t *testing.T) {
	opts := Options{BaseURL: "https://x.test/"}

	url := BuildImageURL("ABC", "G1", opts)
	if url == nil {
		t.Fatal("expected a url")
	}
	expected := "https://x.test/images/games/abc/abc/games/en/G1.png"
	if *url != expected {
		t.Errorf("url = %q, expected %q", *url, expected)
	}
}

func TestBuildImageURLConfiguredPrefixAndLang(t *testing.T) {
	opts := Options{
		BaseURL:        "https://cdn.example.com///",
		ImageLang:      " zh ",
		VendorPrefixes: map[string]string{"PGSoft": "pg-new"},
	}

	url := BuildImageURL(" PGSoft ", "PG-001", opts)
	if url == nil {
		t.Fatal("expected a url")
	}
	expected := "https://cdn.example.com/images/games/pgsoft/pg-new/games/zh/PG-001.png"
	if *url != expected {
		t.Errorf("url = %q, expected %q", *url, expected)
	}
}

func TestBuildImageURLBlankPrefixFallsBack(t *testing.T) {
	opts := Options{
		BaseURL:        "https://x.test",
		VendorPrefixes: map[string]string{"ABC": "   "},
	}

	url := BuildImageURL("ABC", "G1", opts)
	if url == nil {
		t.Fatal("expected a url")
	}
	if !strings.Contains(*url, "/images/games/abc/abc/games/") {
		t.Errorf("blank prefix must fall back to the vendor segment, got %q", *url)
	}
}

func TestBuildImageURLMissingInputs(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		vendor  string
	}{
		{"empty base", "", "ABC"},
		{"whitespace base", "   ", "ABC"},
		{"slashes-only base", " /// ", "ABC"},
		{"empty vendor", "https://x.test", ""},
		{"whitespace vendor", "https://x.test", "  "},
	}

	for _, tt := range tests {
		if url := BuildImageURL(tt.vendor, "G1", Options{BaseURL: tt.baseURL}); url != nil {
			t.Errorf("%s: expected nil, got %q", tt.name, *url)
		}
	}
}

func TestBuildImageURLShape(t *testing.T) {
	opts := Options{BaseURL: "https://x.test", ImageLang: "en"}

	url := BuildImageURL("Vendor", "CODE-9", opts)
	if url == nil {
		t.Fatal("expected a url")
	}
	if !strings.HasSuffix(*url, "/CODE-9.png") {
		t.Errorf("url must end with /{gameCode}.png, got %q", *url)
	}
	if !strings.Contains(*url, "/images/games/vendor/") {
		t.Errorf("lowercased vendor segment must follow /images/games/, got %q", *url)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := (Options{BaseURL: " "}).Validate(); err == nil {
		t.Error("expected validation error for blank base url")
	}
	if err := (Options{BaseURL: "https://x.test"}).Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
