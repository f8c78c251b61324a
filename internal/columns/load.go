package columns

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".tsv", ".xlsx"}

// Supported reports whether Load can read the file at path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load picks a reader from the file extension. sheet only applies to workbooks.
func Load(path, sheet string) (*Store, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".tsv":
		return LoadTSV(path)
	case ".xlsx":
		return LoadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
