package attendsplit

import (
	"fmt"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// DefaultMarker is the first-cell text ("attendance") that starts a group.
const DefaultMarker = "נוכחות"

// TitleRow is the row, counted from the header, whose first cell names a
// group: header, marker row, title row.
const TitleRow = 2

// Split partitions the table's rows into groups. A row whose first cell
// contains marker starts a new group and becomes its first row. Rows before
// the first marker row form a leading group of their own. Every group
// carries the table's header. An empty marker matches nothing.
func Split(t models.Table, marker string) []models.Group {
	var groups []models.Group
	var current *models.Group

	for _, row := range t.Rows {
		if current == nil || IsMarkerRow(row, marker) {
			groups = append(groups, models.Group{
				Index: len(groups) + 1,
				Table: models.Table{Header: t.Header},
			})
			current = &groups[len(groups)-1]
		}
		current.Table.Rows = append(current.Table.Rows, row)
	}

	for i := range groups {
		groups[i].Title = Title(groups[i].Table, groups[i].Index)
	}
	return groups
}

// IsMarkerRow reports whether the row's first cell contains marker.
func IsMarkerRow(row []string, marker string) bool {
	if marker == "" || len(row) == 0 {
		return false
	}
	return strings.Contains(strings.TrimSpace(row[0]), marker)
}

// Title returns the first cell of the group's title row, or "Table_<n>"
// when that row is missing or its first cell is blank.
func Title(t models.Table, n int) string {
	if row := t.At(TitleRow); len(row) > 0 {
		if title := strings.TrimSpace(row[0]); title != "" {
			return title
		}
	}
	return fmt.Sprintf("Table_%d", n)
}
