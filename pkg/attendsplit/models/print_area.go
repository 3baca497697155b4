package models

// PrintArea represents cell coordinate bounds for a print area or a user range.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Clip returns the rows restricted to the area. rows is 0-based, the area 1-based.
func (a PrintArea) Clip(rows [][]string) [][]string {
	var out [][]string
	for r := a.R1; r <= a.R2 && r <= len(rows); r++ {
		src := rows[r-1]
		row := make([]string, 0, a.C2-a.C1+1)
		for c := a.C1; c <= a.C2; c++ {
			if c <= len(src) {
				row = append(row, src[c-1])
			} else {
				row = append(row, "")
			}
		}
		out = append(out, row)
	}
	return out
}
