package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gardenplanner/entities"
)

const sheetName = "Garden Plans"

// BuildXLSX renders plan history as a spreadsheet with the same columns
// as the CSV export. The caller owns closing the file.
func BuildXLSX(history []entities.ResolvedPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	header := []any{"Date", "Plants", "Total Yield (lbs)", "Total Savings ($)"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}
	for i, g := range history {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			g.CreatedAt.Format("1/2/2006"),
			plantsCell(g),
			totalYieldLbs(g),
			g.TotalEstimatedSavings,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
