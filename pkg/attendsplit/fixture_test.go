package attendsplit

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// legacyWorkbook is a BIFF8 workbook whose first sheet holds five rows of
// letters; the other two sheets are empty.
var legacyWorkbook = filepath.Join("testdata", "ragged.xls")

// writeWorkbook saves rows to Sheet1 of a new workbook and returns its path.
func writeWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		if row == nil {
			continue
		}
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// attendanceRows returns a header and ten data rows with marker rows at
// data index 0 and 5. Titles sit on the row after each marker.
func attendanceRows() [][]any {
	rows := [][]any{{"Name", "Sun", "Mon"}}
	titles := []string{"Class 1/2", "Class 3"}
	for g, title := range titles {
		rows = append(rows,
			[]any{DefaultMarker + " " + title, "", ""},
			[]any{title, "", ""},
		)
		for i := 0; i < 3; i++ {
			rows = append(rows, []any{fmt.Sprintf("Student %d-%d", g+1, i+1), "x", ""})
		}
	}
	return rows
}
