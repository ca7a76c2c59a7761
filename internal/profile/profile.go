// Package profile loads conversion profiles: the reusable part of a
// conversion (image host, language, vendor prefixes, tab selection) kept
// in a yaml file next to the workbooks it serves.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet"
)

// Profile is the yaml shape of a conversion profile.
//
//	baseUrl: https://stg-memberapi.example.com
//	imageLang: zh
//	sheets: [PGSoft, JILI]
//	vendors:
//	  PGSoft:
//	    prefix: pgsoft
type Profile struct {
	BaseURL   string                   `yaml:"baseUrl"`
	ImageLang string                   `yaml:"imageLang"`
	Sheets    []string                 `yaml:"sheets"`
	Vendors   map[string]VendorProfile `yaml:"vendors"`
}

// VendorProfile holds per-vendor settings.
type VendorProfile struct {
	Prefix string `yaml:"prefix"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Options converts the profile into conversion options.
func (p *Profile) Options() vendorsheet.Options {
	opts := vendorsheet.Options{
		BaseURL:        p.BaseURL,
		ImageLang:      p.ImageLang,
		VendorPrefixes: make(map[string]string, len(p.Vendors)),
	}
	for vendor, vp := range p.Vendors {
		if vp.Prefix != "" {
			opts.VendorPrefixes[vendor] = vp.Prefix
		}
	}
	return opts
}
