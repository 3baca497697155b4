package parser

import (
	"fmt"
	"io"
	"math"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/yamitzky/xlrd-go/xlrd"
)

// xlsBook reads legacy BIFF (.xls) workbooks.
type xlsBook struct {
	bk *xlrd.Book
}

func openXLS(path string) (*xlsBook, error) {
	// Formatting info loads the XF records that tell dates from numbers.
	bk, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{
		Logfile:        io.Discard,
		FormattingInfo: true,
	})
	if err != nil {
		return nil, err
	}
	return &xlsBook{bk: bk}, nil
}

func (b *xlsBook) SheetNames() []string {
	return b.bk.SheetNames()
}

func (b *xlsBook) Rows(sheet string) ([][]string, error) {
	sh, err := b.bk.SheetByName(sheet)
	if err != nil {
		return nil, ErrSheetNotExist{SheetName: sheet}
	}

	rows := make([][]string, 0, sh.NRows)
	for rowx := 0; rowx < sh.NRows; rowx++ {
		row := make([]string, sh.NCols)
		for colx := 0; colx < sh.NCols; colx++ {
			ctype := sh.CellType(rowx, colx)
			if ctype == xlrd.XL_CELL_NUMBER && isDateXF(b.bk, sh.CellXFIndex(rowx, colx)) {
				ctype = xlrd.XL_CELL_DATE
			}
			row[colx] = normalizeText(xlsCellText(ctype, sh.CellValue(rowx, colx), b.bk.Datemode))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// PrintArea is not read from BIFF files.
func (b *xlsBook) PrintArea(string) (*models.PrintArea, bool) {
	return nil, false
}

func (b *xlsBook) Close() error {
	b.bk.ReleaseResources()
	return nil
}

// xlsCellText formats a BIFF cell value the way a spreadsheet displays it.
// datemode selects the 1900 (0) or 1904 (1) date system for date cells.
func xlsCellText(ctype int, value interface{}, datemode int) string {
	switch ctype {
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK:
		return ""
	case xlrd.XL_CELL_DATE:
		if v, ok := value.(float64); ok {
			if text, ok := formatXLDate(v, datemode); ok {
				return text
			}
			return formatNumber(v)
		}
	case xlrd.XL_CELL_NUMBER:
		if v, ok := value.(float64); ok {
			return formatNumber(v)
		}
	case xlrd.XL_CELL_BOOLEAN:
		switch v := value.(type) {
		case bool:
			if v {
				return "TRUE"
			}
			return "FALSE"
		case int:
			if v != 0 {
				return "TRUE"
			}
			return "FALSE"
		}
	case xlrd.XL_CELL_ERROR:
		if code, ok := value.(byte); ok {
			if text, ok := xlrd.ErrorTextFromCode[code]; ok {
				return text
			}
		}
		return "#ERROR"
	}
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// isDateXF reports whether the XF record at xfIndex carries a date format.
func isDateXF(bk *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(bk.XFList) {
		return false
	}
	key := bk.XFList[xfIndex].FormatKey
	switch key {
	case 14, 15, 16, 17, 18, 19, 20, 21, 22, 27, 30, 36, 50, 57, 58:
		return true
	}
	format := bk.FormatMap[key]
	if format == nil || format.FormatString == "" {
		return false
	}
	return xlrd.IsDateFormatString(bk, format.FormatString)
}

// formatXLDate renders an Excel serial date as an ISO date, time or
// date-time depending on which parts the serial carries.
func formatXLDate(v float64, datemode int) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return "", false
	}
	t, err := xlrd.XldateAsDatetime(v, datemode)
	if err != nil {
		return "", false
	}
	switch {
	case v < 1:
		return t.Format("15:04:05"), true
	case v != math.Trunc(v):
		return t.Format("2006-01-02 15:04:05"), true
	default:
		return t.Format("2006-01-02"), true
	}
}
