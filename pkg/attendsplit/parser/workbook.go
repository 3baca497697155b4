// Package parser provides spreadsheet reading utilities.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrSheetNotExist is re-exported from excelize and returned by every
// Workbook implementation when a requested sheet is missing.
type ErrSheetNotExist = excelize.ErrSheetNotExist

// Workbook is a read-only view over a spreadsheet file.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns every row of the sheet as display strings, starting at
	// cell A1. Rows may have different lengths.
	Rows(sheet string) ([][]string, error)
	// PrintArea returns the first print area defined for the sheet.
	PrintArea(sheet string) (*models.PrintArea, bool)
	Close() error
}

// Open opens a workbook, choosing the reader by file extension.
func Open(path string) (Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
