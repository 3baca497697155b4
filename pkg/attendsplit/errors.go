package attendsplit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates the sheet holds no data.
var ErrEmptySheet = errors.New("sheet is empty")

// ErrNoGroups indicates splitting produced nothing to export.
var ErrNoGroups = errors.New("no groups to export")

// ExtractionError represents an error while reading a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "rows", "range", "print_area"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// ExportError represents a failure writing one document.
type ExportError struct {
	// Group is the index of the first group in the document.
	Group int
	Path  string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error for group %d (%s): %v", e.Group, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
