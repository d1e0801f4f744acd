package output

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

var headerRow = []interface{}{"DEALER CODE", "GAME", "DRAW", "FROM", "QTY"}

// WriteXLSX writes structured rows to a workbook: one "All" sheet with
// every row, plus one sheet per game group when more than one game is
// present. Sheet names longer than the xlsx limit are truncated.
func WriteXLSX(path string, rows []models.StructuredRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const allSheet = "All"
	f.SetSheetName("Sheet1", allSheet)
	if err := writeSheet(f, allSheet, rows); err != nil {
		return err
	}

	groups := make(map[string][]models.StructuredRow)
	for _, row := range rows {
		if row.Game != "" {
			groups[row.Game] = append(groups[row.Game], row)
		}
	}
	if len(groups) > 1 {
		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := f.NewSheet(sheetName(name)); err != nil {
				return err
			}
			if err := writeSheet(f, sheetName(name), groups[name]); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, rows []models.StructuredRow) error {
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.DealerCode, row.Game, row.Draw, row.From, row.Qty}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// sheetName truncates to the 31-character xlsx sheet name limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
