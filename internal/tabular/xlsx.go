package tabular

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes t to a single-sheet workbook at path. Cells in the
// numeric columns are stored as numbers when they parse; blank cells stay
// blank.
func WriteXLSX(path, sheet string, t *Table, numeric ...int) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	isNumeric := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	for c, h := range t.Header {
		if err := write(c, 0, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			var value any = v
			if isNumeric[c] {
				if n, perr := strconv.ParseFloat(v, 64); perr == nil {
					value = n
				}
			}
			if err := write(c, r+1, value); err != nil {
				return fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving xlsx: %w", err)
	}
	return nil
}
