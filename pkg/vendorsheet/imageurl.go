package vendorsheet

import (
	"fmt"
	"strings"
)

// BuildImageURL composes the image URL for one game:
//
//	{base}/images/games/{vendor}/{prefix}/games/{lang}/{code}.png
//
// where {vendor} is the lowercased trimmed vendor code, {prefix} comes from
// Options.PrefixFor and {lang} defaults to "en". It returns nil when the
// trimmed base URL or vendor code is empty; the record then simply carries
// no image.
func BuildImageURL(vendorCode, gameCode string, opts Options) *string {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil
	}
	v := strings.TrimSpace(vendorCode)
	if v == "" {
		return nil
	}

	lang := strings.TrimSpace(opts.ImageLang)
	if lang == "" {
		lang = defaultImageLang
	}

	url := fmt.Sprintf("%s/images/games/%s/%s/games/%s/%s.png",
		base, strings.ToLower(v), opts.PrefixFor(v), lang, gameCode)
	return &url
}
