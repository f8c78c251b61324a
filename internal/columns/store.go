package columns

// IDColumn names the text column that supplies the canonical row order.
const IDColumn = "Id"

// Store holds the numeric and text columns of one dataset.
// Names keep the order in which they were added; that order is the one
// the panel renders rows in and the one the default selection is taken from.
type Store struct {
	numericNames []string
	numeric      map[string][]float64

	textNames []string
	text      map[string][]string
}

func NewStore() *Store {
	return &Store{
		numeric: map[string][]float64{},
		text:    map[string][]string{},
	}
}

// AddNumeric adds or replaces a numeric column. A replaced column keeps its position.
func (s *Store) AddNumeric(name string, values []float64) {
	if _, ok := s.numeric[name]; !ok {
		s.numericNames = append(s.numericNames, name)
	}
	s.numeric[name] = values
}

// AddText adds or replaces a text column. A replaced column keeps its position.
func (s *Store) AddText(name string, values []string) {
	if _, ok := s.text[name]; !ok {
		s.textNames = append(s.textNames, name)
	}
	s.text[name] = values
}

func (s *Store) NumericNames() []string { return append([]string(nil), s.numericNames...) }
func (s *Store) TextNames() []string    { return append([]string(nil), s.textNames...) }

func (s *Store) Numeric(name string) ([]float64, bool) {
	v, ok := s.numeric[name]
	return v, ok
}

func (s *Store) Text(name string) ([]string, bool) {
	v, ok := s.text[name]
	return v, ok
}

func (s *Store) HasNumeric(name string) bool {
	_, ok := s.numeric[name]
	return ok
}

// Rows returns the length of the Id column, or 0 when there is none.
func (s *Store) Rows() int {
	return len(s.text[IDColumn])
}
