package models

// OutputFile describes one written document.
type OutputFile struct {
	// Path is the file path the document was written to.
	Path string `json:"path"`
	// Groups lists the indices of the groups rendered into the file, in order.
	Groups []int `json:"groups"`
	// Rows is the number of data rows written, headers excluded.
	Rows int `json:"rows"`
}

// GroupSummary describes one split group.
type GroupSummary struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Rows  int    `json:"rows"`
	File  string `json:"file"`
}

// Manifest summarizes an export run.
type Manifest struct {
	// Source is the input workbook file name.
	Source string `json:"source"`
	// Sheet is the sheet that was split.
	Sheet string `json:"sheet"`
	// Format is the document format (pdf, docx).
	Format string `json:"format"`
	// Combined reports whether all groups went into one file.
	Combined bool `json:"combined"`
	// Files lists written documents in write order.
	Files []OutputFile `json:"files"`
	// Groups lists split groups in sheet order.
	Groups []GroupSummary `json:"groups"`
}
