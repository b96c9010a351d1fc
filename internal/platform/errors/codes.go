// Package errors provides structured error handling for the roster report.
package errors

import stderrors "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dataset errors
	CodeDatasetMissing Code = "DATASET_MISSING"
	CodeDatasetInvalid Code = "DATASET_INVALID"
	CodeColumnMissing  Code = "COLUMN_MISSING"

	// Rendering errors
	CodeChartEmpty         Code = "CHART_EMPTY"
	CodePaletteUnsupported Code = "PALETTE_UNSUPPORTED"
)

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
