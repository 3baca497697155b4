package models

// SheetData is a loaded sheet normalized into a single table.
type SheetData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the sheet that was read.
	SheetName string `json:"sheet_name"`
	// Area is the cell range the table was read from, if restricted.
	Area *PrintArea `json:"area,omitempty"`
	// Table is the sheet content.
	Table Table `json:"table"`
}
