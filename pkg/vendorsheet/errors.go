package vendorsheet

import (
	"errors"
	"fmt"
)

// ErrBaseURLRequired indicates a conversion was requested without an image
// base URL configured. Callers surface it before invoking the batch.
var ErrBaseURLRequired = errors.New("image base url is required")

// SkipReason classifies why a sheet produced no vendor bundle.
type SkipReason string

const (
	// SkipNoHeaderRow: no row in the sheet contains a "Game Code" header.
	SkipNoHeaderRow SkipReason = "no_header_row"
	// SkipNoRecords: a header row exists but no data row kept a record.
	SkipNoRecords SkipReason = "no_records"
)

// SheetSkip is the diagnostic recorded for a sheet absent from the output.
// It is a value, not an error: skipped sheets never abort a batch.
type SheetSkip struct {
	SheetName string     `json:"sheetName"`
	Reason    SkipReason `json:"reason"`
}

func (s SheetSkip) String() string {
	switch s.Reason {
	case SkipNoHeaderRow:
		return fmt.Sprintf("sheet %q: no \"Game Code\" header row found", s.SheetName)
	case SkipNoRecords:
		return fmt.Sprintf("sheet %q: no convertible game rows", s.SheetName)
	default:
		return fmt.Sprintf("sheet %q: skipped (%s)", s.SheetName, s.Reason)
	}
}
