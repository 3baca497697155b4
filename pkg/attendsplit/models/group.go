package models

// Group is one attendance table delimited by a marker row.
type Group struct {
	// Index is the 1-based position of the group in the sheet.
	Index int `json:"index"`
	// Title is the display title read from the group's title row.
	Title string `json:"title"`
	// Table holds the group's rows. Rows[0] is the marker row unless the
	// group collects rows preceding the first marker.
	Table Table `json:"table"`
}
