package parser

import (
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/xuri/excelize/v2"
)

type xlsxBook struct {
	f *excelize.File
}

func openXLSX(path string) (*xlsxBook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxBook{f: f}, nil
}

func (b *xlsxBook) SheetNames() []string {
	return b.f.GetSheetList()
}

func (b *xlsxBook) Rows(sheet string) ([][]string, error) {
	return ExtractRows(b.f, sheet)
}

func (b *xlsxBook) PrintArea(sheet string) (*models.PrintArea, bool) {
	areas, err := ExtractPrintAreas(b.f)
	if err != nil || len(areas[sheet]) == 0 {
		return nil, false
	}
	area := areas[sheet][0]
	return &area, true
}

func (b *xlsxBook) Close() error {
	return b.f.Close()
}

// ExtractRows reads a sheet as formatted display strings.
// Row i of the result is sheet row i+1; trailing empty cells are omitted.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for colIdx, cellValue := range row {
			row[colIdx] = normalizeText(cellValue)
		}
	}

	return rows, nil
}
