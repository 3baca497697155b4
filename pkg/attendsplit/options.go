// Package attendsplit splits attendance sheets into per-group documents.
package attendsplit

import (
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
	"go.uber.org/zap"
)

// Options configures loading, splitting and export.
type Options struct {
	// SheetName selects the sheet to read. Empty selects the first sheet.
	SheetName string
	// IncludeHeader treats the sheet's first row as a header repeated atop
	// every group. If nil, defaults to true.
	IncludeHeader *bool
	// Range restricts loading to an A1 range such as "A1:F40".
	Range string
	// UsePrintArea restricts loading to the sheet's defined print area.
	// Ignored when Range is set.
	UsePrintArea bool

	// OutputDir is the directory documents are written to. Created if missing.
	OutputDir string
	// Combine writes every group into a single document.
	Combine bool
	// CombinedName is the combined document's base name. If empty, the
	// input file name without extension is used.
	CombinedName string
	// Format selects the document format. Empty selects PDF.
	Format render.Format
	// FontPath is the UTF-8 TrueType font used for PDF output.
	FontPath string
	// MirrorColumns lays columns out right to left.
	MirrorColumns bool
	// Jobs bounds the number of documents rendered in parallel. Values
	// below 1 mean 1.
	Jobs int

	// Logger receives progress messages. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default options: PDF output to the working
// directory, one document per group, header included.
func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		Format:    render.FormatPDF,
		Jobs:      1,
	}
}

// ShouldIncludeHeader returns whether the first row is a header.
func (o Options) ShouldIncludeHeader() bool {
	if o.IncludeHeader != nil {
		return *o.IncludeHeader
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) jobs() int {
	if o.Jobs < 1 {
		return 1
	}
	return o.Jobs
}

func (o Options) layout() render.Layout {
	return render.Layout{
		FontPath:      o.FontPath,
		MirrorColumns: o.MirrorColumns,
	}
}
