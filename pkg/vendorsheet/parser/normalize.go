// Package parser implements the grid-scanning primitives of the conversion
// pipeline: header normalization, metadata extraction and header row lookup.
package parser

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes raw cell content into a comparable header key:
// string form, lowercased, with every whitespace run removed entirely
// ("Game  Code" becomes "gamecode"). Total over any cell value; nil
// normalizes to "".
func Normalize(cell any) string {
	s := strings.ToLower(CellString(cell))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeLabel normalizes like Normalize and additionally strips trailing
// colons, so "Vendor Code:" and "Vendor Code：" match the same label token.
func NormalizeLabel(cell any) string {
	return strings.TrimRight(Normalize(cell), ":：")
}
