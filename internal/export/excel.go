package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetEnrolled is the sheet name for bulk registration exports.
const SheetEnrolled = "Enrolled Students"

// BuildSpreadsheet serializes a header row plus record rows into an xlsx
// workbook with a single named sheet. With no rows the workbook still
// carries the header, so an empty filtered set downloads as a valid file.
func BuildSpreadsheet(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	write := func(rowIdx int, cells []string) error {
		for colIdx, v := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(0, header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := write(i+1, row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
