// Package vendorsheet converts spreadsheet game catalog tabs into the
// normalized vendor-games export document.
package vendorsheet

import "strings"

const defaultImageLang = "en"

// Options configures one conversion batch. Values come from the caller
// (CLI flags, a profile file, or the HTTP session) and are read, never
// mutated, by the pipeline.
type Options struct {
	// BaseURL is the image host root. Records carry no image when it is
	// empty after trimming.
	BaseURL string
	// ImageLang is the language path segment of image URLs. Defaults to
	// "en" when empty.
	ImageLang string
	// VendorPrefixes maps a vendor code to its image path prefix segment.
	// Vendors without an entry fall back to their own lowercased code, which
	// makes a uniform global prefix just a map whose entries all agree.
	VendorPrefixes map[string]string
}

// DefaultOptions returns options with the default language segment and no
// base URL configured.
func DefaultOptions() Options {
	return Options{ImageLang: defaultImageLang}
}

// PrefixFor resolves the image prefix segment for a vendor code.
func (o Options) PrefixFor(vendorCode string) string {
	v := strings.TrimSpace(vendorCode)
	if p := strings.TrimSpace(o.VendorPrefixes[v]); p != "" {
		return p
	}
	return strings.ToLower(v)
}

// Validate checks the preconditions callers must enforce before starting a
// batch. The pipeline itself stays total even when they are violated; a
// missing base URL merely yields records without images.
func (o Options) Validate() error {
	if strings.TrimSpace(o.BaseURL) == "" {
		return ErrBaseURLRequired
	}
	return nil
}
