package render

// Fixed page styling shared by every renderer. Lengths are in points.
const (
	PageMargin       = 10.0
	TitleFontSize    = 22.0
	TitleSpacing     = 20.0
	BodyFontSize     = 10.0
	FirstColumnWidth = 181.75
	RowHeight        = 15.0
	CellPadding      = 5.0
	GridLineWidth    = 0.5
)

// ColumnWidth is the width of every column after the first.
var ColumnWidth = CentimetersToPoints(1)

// FontFamily is the family name the UTF-8 font is registered under.
const FontFamily = "NotoSansHebrew"

// DefaultFontFile is the font file looked up when none is configured.
const DefaultFontFile = "NotoSansHebrew-Regular.ttf"

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	// HeaderFill is the header row background (grey).
	HeaderFill = RGB{128, 128, 128}
	// HeaderText is the header row text color (whitesmoke).
	HeaderText = RGB{245, 245, 245}
	// GridColor is the cell border color.
	GridColor = RGB{0, 0, 0}
	// BodyText is the data row text color.
	BodyText = RGB{0, 0, 0}
)

// Layout configures a renderer.
type Layout struct {
	// FontPath is a UTF-8 TrueType font used for all text. When empty the
	// PDF renderer falls back to a core font that only covers Latin text.
	FontPath string
	// MirrorColumns lays columns out right to left, first column rightmost.
	MirrorColumns bool
}

// ColumnWidths returns the width of each of n columns.
func ColumnWidths(n int) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		if i == 0 {
			widths[i] = FirstColumnWidth
		} else {
			widths[i] = ColumnWidth
		}
	}
	return widths
}

// columnOrder returns the drawing order of n columns, left to right.
func (l Layout) columnOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		if l.MirrorColumns {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}
