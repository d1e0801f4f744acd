// Package models defines data structures for ticket-range reconciliation.
package models

// Cell is a single spreadsheet value: string, int64, float64 or nil.
// Cells carry no identity beyond their position in a Grid.
type Cell interface{}

// Row is an ordered, fixed-length sequence of cells.
type Row []Cell

// Grid is a rectangular 2-D cell layout decoded from one sheet.
// Every row is padded to the maximum column count seen in the sheet.
type Grid struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the decoded sheet.
	SheetName string `json:"sheet_name"`
	// Rows contains the padded rows, row-major, 0-based.
	Rows []Row `json:"rows"`
}
