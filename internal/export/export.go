// Package export writes a user's contacts to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dukaforge/rolodex/pkg/types"
)

// SheetName is the worksheet that holds the exported rows.
const SheetName = "Contacts"

// header lists the exported columns in order.
var header = []string{"ID", "First Name", "Last Name", "Phone", "Email"}

// Contacts writes the given contacts to an .xlsx workbook at path, one
// row per contact under a bold header row. An empty slice produces a
// workbook with only the header.
func Contacts(path string, rows []types.Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("converting coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("setting header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("setting header style: %w", err)
		}
	}

	for i, c := range rows {
		values := []any{c.ID, c.FirstName, c.LastName, c.Phone, c.Email}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("converting coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("setting cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
