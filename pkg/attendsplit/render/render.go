// Package render lays out attendance groups as right-to-left formatted
// pages. Each group gets a centred title above a gridded table; groups
// always start on a new page.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// Format is an output document format.
type Format string

const (
	// FormatPDF renders PDF documents.
	FormatPDF Format = "pdf"
	// FormatDOCX renders Word documents.
	FormatDOCX Format = "docx"
)

// ErrUnknownFormat indicates an output format no renderer handles.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes groups as one document.
type Renderer interface {
	// Render writes groups in order, each starting on a new page.
	Render(w io.Writer, groups []models.Group) error
	// Ext returns the file extension including the leading dot.
	Ext() string
}

// ParseFormat parses a format name, case-insensitively.
// An empty name selects PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// New returns a renderer for the format.
func New(format Format, layout Layout) (Renderer, error) {
	switch format {
	case FormatPDF, "":
		return NewPDF(layout)
	case FormatDOCX:
		return NewDOCX(layout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// cellText prepares a cell for single-line drawing.
func cellText(s string) string {
	return Visual(strings.ReplaceAll(s, "\n", " "))
}
