package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// docxFontFace is the face name Word looks up for all scripts.
const docxFontFace = "Noto Sans Hebrew"

// DOCX renders landscape A4 Word documents. Text is written in logical
// order; Word applies the bidi algorithm to Hebrew runs itself.
type DOCX struct {
	layout Layout
}

// NewDOCX returns a DOCX renderer.
func NewDOCX(layout Layout) *DOCX {
	return &DOCX{layout: layout}
}

// Ext implements Renderer.
func (r *DOCX) Ext() string {
	return ".docx"
}

// Render implements Renderer.
func (r *DOCX) Render(w io.Writer, groups []models.Group) error {
	doc := docx.New().WithDefaultTheme()

	for i, g := range groups {
		r.title(doc, g.Title, i > 0)
		r.table(doc, g.Table)
	}

	// The section properties close the body and apply to every page.
	margin := twips(PageMargin)
	doc.Document.Body.Items = append(doc.Document.Body.Items, &docx.SectPr{
		PgSz: &docx.PgSz{W: twips(A4Height), H: twips(A4Width)},
		PgMar: &docx.PgMar{
			Top:    margin,
			Left:   margin,
			Bottom: margin,
			Right:  margin,
		},
	})

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *DOCX) title(doc *docx.Docx, title string, pageBreak bool) {
	p := doc.AddParagraph().Justification("center")
	if pageBreak {
		p.AddPageBreaks()
	}
	styleRun(p.AddText(title), TitleFontSize, BodyText)

	// Spacing under the title is an empty line at title size.
	styleRun(doc.AddParagraph().AddText(""), TitleSpacing, BodyText)
}

func (r *DOCX) table(doc *docx.Docx, t models.Table) {
	widths := ColumnWidths(t.Width())
	order := r.layout.columnOrder(len(widths))

	colWidths := make([]int64, len(order))
	var total int64
	for i, c := range order {
		colWidths[i] = int64(twips(widths[c]))
		total += colWidths[i]
	}
	rowHeights := make([]int64, t.Len())
	for i := range rowHeights {
		rowHeights[i] = int64(twips(RowHeight))
	}

	border := hexColor(GridColor)
	tbl := doc.AddTableTwips(rowHeights, colWidths, total, &docx.APITableBorderColors{
		Top:     border,
		Left:    border,
		Bottom:  border,
		Right:   border,
		InsideH: border,
		InsideV: border,
	}).Justification("center")

	for i, row := range tbl.TableRows {
		header := t.HasHeader() && i == 0
		row.TableRowProperties.TableRowHeight.Rule = "atLeast"

		values := t.At(i)
		for slot, cell := range row.TableCells {
			c := order[slot]
			cell.TableCellProperties.VAlign = &docx.WVerticalAlignment{Val: "center"}
			text := BodyText
			if header {
				cell.Shade("clear", "auto", hexColor(HeaderFill))
				text = HeaderText
			}

			var value string
			if c < len(values) {
				value = strings.ReplaceAll(values[c], "\n", " ")
			}
			styleRun(cell.AddParagraph().Justification("center").AddText(value), BodyFontSize, text)
		}
	}

	// Word merges adjacent tables; an empty paragraph keeps groups apart.
	doc.AddParagraph()
}

func styleRun(run *docx.Run, size float64, c RGB) {
	half := strconv.Itoa(int(math.Round(size * 2)))
	run.Font(docxFontFace, docxFontFace, docxFontFace, "cs").
		Size(half).
		SizeCs(half).
		Color(hexColor(c))
}

// twips converts points to twentieths of a point.
func twips(pt float64) int {
	return int(math.Round(pt * 20))
}

func hexColor(c RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
