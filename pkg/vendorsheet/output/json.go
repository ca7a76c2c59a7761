// Package output serializes export documents.
package output

import (
	"encoding/json"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
)

// ToJSON marshals the export document, indented when pretty is set so the
// result is reviewable and hand-editable before download.
func ToJSON(doc *models.ExportDocument, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
