package columns

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a worksheet whose first row is the header.
// An empty sheet name selects the first sheet of the workbook.
func LoadXLSX(path, sheet string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, ErrEmpty)
	}
	return fromRecords(rows[0], rows[1:]), nil
}
