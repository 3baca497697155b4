// Package models defines data structures for attendance splitting.
package models

// Table is a rectangular grid of display strings.
type Table struct {
	// Header is the sheet's first row, repeated at the top of every group (optional).
	Header []string `json:"header,omitempty"`
	// Rows contains the data rows in sheet order. Every row has Width() cells.
	Rows [][]string `json:"rows"`
}

// Width returns the column count shared by the header and every row.
func (t Table) Width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Len returns the number of rows as laid out, header included.
func (t Table) Len() int {
	if t.HasHeader() {
		return len(t.Rows) + 1
	}
	return len(t.Rows)
}

// HasHeader reports whether the table carries a header row.
func (t Table) HasHeader() bool {
	return len(t.Header) > 0
}

// At returns row i of the table as laid out, counting the header as row 0
// when present. It returns nil when i is out of range.
func (t Table) At(i int) []string {
	if t.HasHeader() {
		if i == 0 {
			return t.Header
		}
		i--
	}
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// Normalize pads the header and every row with empty cells to a common width.
func (t *Table) Normalize() {
	w := t.Width()
	if t.HasHeader() {
		t.Header = pad(t.Header, w)
	}
	for i, row := range t.Rows {
		t.Rows[i] = pad(row, w)
	}
}

func pad(row []string, w int) []string {
	if len(row) >= w {
		return row
	}
	out := make([]string, w)
	copy(out, row)
	return out
}
