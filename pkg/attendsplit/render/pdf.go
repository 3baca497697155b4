package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// coreFontFamily is used when no UTF-8 font is available.
const coreFontFamily = "Helvetica"

// PDF renders landscape A4 PDF documents.
type PDF struct {
	layout Layout
	// font holds the UTF-8 TrueType font, nil when using the core font.
	font []byte
}

// NewPDF reads the layout's font, if any, and returns a PDF renderer.
// The renderer is safe for concurrent use.
func NewPDF(layout Layout) (*PDF, error) {
	r := &PDF{layout: layout}
	if layout.FontPath != "" {
		b, err := os.ReadFile(layout.FontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		r.font = b
	}
	return r, nil
}

// Ext implements Renderer.
func (r *PDF) Ext() string {
	return ".pdf"
}

// Render implements Renderer.
func (r *PDF) Render(w io.Writer, groups []models.Group) error {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(PageMargin, PageMargin, PageMargin)
	pdf.SetAutoPageBreak(false, PageMargin)
	pdf.SetCellMargin(CellPadding)
	pdf.SetCreator("attendsplit", true)

	family := FontFamily
	translate := func(s string) string { return s }
	if r.font != nil {
		pdf.AddUTF8FontFromBytes(FontFamily, "", r.font)
	} else {
		family = coreFontFamily
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	p := &pdfPage{pdf: pdf, family: family, translate: translate, layout: r.layout}
	for _, g := range groups {
		pdf.AddPage()
		p.title(g.Title)
		p.table(g.Table)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("group %d: %w", g.Index, err)
		}
	}

	return pdf.Output(w)
}

// pdfPage draws onto one fpdf document.
type pdfPage struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
	layout    Layout
}

func (p *pdfPage) text(s string) string {
	return p.translate(cellText(s))
}

func (p *pdfPage) title(title string) {
	pageW, _ := p.pdf.GetPageSize()
	p.pdf.SetFont(p.family, "", TitleFontSize)
	p.pdf.SetTextColor(int(BodyText.R), int(BodyText.G), int(BodyText.B))
	p.pdf.CellFormat(pageW-2*PageMargin, TitleFontSize*1.2, p.text(title), "", 1, "C", false, 0, "")
	p.pdf.Ln(TitleSpacing)
}

func (p *pdfPage) table(t models.Table) {
	widths := ColumnWidths(t.Width())
	order := p.layout.columnOrder(len(widths))

	total := 0.0
	for _, w := range widths {
		total += w
	}
	pageW, pageH := p.pdf.GetPageSize()
	left := PageMargin
	if avail := pageW - 2*PageMargin; total < avail {
		left += (avail - total) / 2
	}

	p.pdf.SetFont(p.family, "", BodyFontSize)
	p.pdf.SetLineWidth(GridLineWidth)
	p.pdf.SetDrawColor(int(GridColor.R), int(GridColor.G), int(GridColor.B))
	p.pdf.SetFillColor(int(HeaderFill.R), int(HeaderFill.G), int(HeaderFill.B))

	for i := 0; i < t.Len(); i++ {
		row := t.At(i)
		if p.pdf.GetY()+RowHeight > pageH-PageMargin {
			p.pdf.AddPage()
		}

		header := t.HasHeader() && i == 0
		if header {
			p.pdf.SetTextColor(int(HeaderText.R), int(HeaderText.G), int(HeaderText.B))
		} else {
			p.pdf.SetTextColor(int(BodyText.R), int(BodyText.G), int(BodyText.B))
		}

		p.pdf.SetX(left)
		for _, c := range order {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			p.pdf.CellFormat(widths[c], RowHeight, p.text(cell), "1", 0, "C", header, 0, "")
		}
		p.pdf.Ln(RowHeight)
	}
}
