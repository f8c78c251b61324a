package columns

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmpty             = errors.New("columns: no header row")
	ErrUnsupportedFormat = errors.New("columns: unsupported file format")
)

// LoadCSV reads a comma separated file with a header row.
func LoadCSV(path string) (*Store, error) {
	return loadDelimited(path, ',')
}

// LoadTSV reads a tab separated file with a header row.
func LoadTSV(path string) (*Store, error) {
	return loadDelimited(path, '\t')
}

func loadDelimited(path string, comma rune) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parseDelimited(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseCSV reads comma separated text, e.g. pasted into the viewer.
func ParseCSV(r io.Reader) (*Store, error) {
	return parseDelimited(r, ',')
}

func parseDelimited(r io.Reader, comma rune) (*Store, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmpty
	}
	return fromRecords(recs[0], recs[1:]), nil
}

// fromRecords classifies each header column as numeric or text.
// A column is numeric when every non-blank cell parses as a float; blank
// numeric cells become NaN. The Id column is always text. Short rows are
// padded with blanks.
func fromRecords(header []string, rows [][]string) *Store {
	s := NewStore()
	for i, h := range header {
		name := strings.TrimSpace(h)
		if strings.EqualFold(name, IDColumn) {
			name = IDColumn
		}
		cells := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				cells[j] = strings.TrimSpace(row[i])
			}
		}
		if name != IDColumn {
			if vals, ok := parseFloats(cells); ok {
				s.AddNumeric(name, vals)
				continue
			}
		}
		s.AddText(name, cells)
	}
	return s
}

func parseFloats(cells []string) ([]float64, bool) {
	vals := make([]float64, len(cells))
	seen := false
	for i, c := range cells {
		if c == "" {
			vals[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
		seen = true
	}
	return vals, seen
}
