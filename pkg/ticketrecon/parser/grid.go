package parser

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// ErrNoSheets indicates the workbook contains no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// DecodeGrid reads the first sheet of a workbook into a rectangular
// grid. Short rows are padded with empty cells so every row shares the
// same column count.
func DecodeGrid(path string) (*models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}
	sheetName := sheetList[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	grid := &models.Grid{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Rows:      make([]models.Row, 0, len(rows)),
	}
	for _, row := range rows {
		cells := make(models.Row, maxCols)
		for colIdx := range cells {
			if colIdx < len(row) && row[colIdx] != "" {
				cells[colIdx] = parseValue(row[colIdx])
			} else {
				cells[colIdx] = ""
			}
		}
		grid.Rows = append(grid.Rows, cells)
	}

	return grid, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) models.Cell {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
