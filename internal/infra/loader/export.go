package loader

import (
	"fmt"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Company Name", "Founder Name", "Role", "LinkedIn URL", "Email", "Phone", "Status"}

var exportWidths = []float64{30, 25, 15, 50, 35, 20, 12}

// WriteResults flattens a job's results into an xlsx workbook, one row per
// founder, and returns the serialized file.
func WriteResults(results []model.CompanyResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	for i, w := range exportWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}

	row := 2
	for _, res := range results {
		for _, founder := range res.FoundersData {
			values := []any{
				res.CompanyName,
				founder.Name,
				founder.Role,
				founder.LinkedInURL,
				founder.Email,
				founder.Phone,
				string(res.Status),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, fmt.Errorf("write row %d: %w", row, err)
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
