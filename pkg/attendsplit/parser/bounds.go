package parser

import (
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// DataBounds returns the smallest area enclosing every non-blank cell.
// ok is false when the rows hold no data.
func DataBounds(rows [][]string) (area models.PrintArea, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.PrintArea{}, false
	}
	return models.PrintArea{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// ClipToData trims blank rows and columns around the data and pads the
// remaining rows to a common width.
func ClipToData(rows [][]string) [][]string {
	area, ok := DataBounds(rows)
	if !ok {
		return nil
	}
	return area.Clip(rows)
}

// findDataBounds finds the bounding box of non-blank cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
