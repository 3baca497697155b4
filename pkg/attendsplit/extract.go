package attendsplit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/parser"
	"go.uber.org/zap"
)

// Extract loads one sheet of a workbook as a rectangular table.
func Extract(path string, opts Options) (*models.SheetData, error) {
	wb, err := open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheetName := opts.SheetName
	names := wb.SheetNames()
	if sheetName == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheetName = names[0]
	} else if !slices.Contains(names, sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := wb.Rows(sheetName)
	if err != nil {
		var notExist parser.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %w", ErrSheetNotFound, err)
		}
		return nil, NewExtractionError(sheetName, "rows", err)
	}

	var area *models.PrintArea
	switch {
	case opts.Range != "":
		a, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, NewExtractionError(sheetName, "range", err)
		}
		area = &a
	case opts.UsePrintArea:
		if a, ok := wb.PrintArea(sheetName); ok {
			area = a
		} else {
			opts.logger().Debug("no print area defined, reading whole sheet", zap.String("sheet", sheetName))
		}
	}

	if area != nil {
		rows = trimTrailingBlankRows(area.Clip(rows))
	} else {
		rows = parser.ClipToData(rows)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, sheetName)
	}

	var table models.Table
	if opts.ShouldIncludeHeader() {
		table.Header = rows[0]
		table.Rows = rows[1:]
	} else {
		table.Rows = rows
	}
	table.Normalize()

	opts.logger().Debug("sheet loaded",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", table.Width()),
	)

	return &models.SheetData{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Area:      area,
		Table:     table,
	}, nil
}

// SheetNames lists the sheets of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	wb, err := open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.SheetNames(), nil
}

func open(path string) (parser.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	wb, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return wb, nil
}

func trimTrailingBlankRows(rows [][]string) [][]string {
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
