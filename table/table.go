package table

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// TABLE — Ordered rows of raw string cells
// ============================================================================
// Column names are caller-supplied; no invariant about casing or spelling.
// The table is read-mostly: consumers may attach derived float columns
// (normalized time, distance) but never rewrite the original cells.
//
// Numeric access coerces value-by-value: a cell that does not parse as a
// finite real number becomes NaN — never an error, never a hard zero.
// ============================================================================

// Table is an in-memory dataset: a header and ordered rows of string cells.
type Table struct {
	columns []string
	index   map[string]int // column name → position (first occurrence wins)
	rows    [][]string

	derived map[string][]float64
	numeric map[string][]float64 // coercion cache, keyed by column name
}

// New builds a Table from a header and rows.
// Short rows are padded with empty cells; long rows are truncated.
func New(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := index[c]; !exists {
			index[c] = i
		}
	}

	fixed := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == len(columns) {
			fixed[i] = row
			continue
		}
		r := make([]string, len(columns))
		copy(r, row)
		fixed[i] = r
	}

	return &Table{
		columns: columns,
		index:   index,
		rows:    fixed,
		derived: make(map[string][]float64),
		numeric: make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header in original order.
func (t *Table) Columns() []string { return t.columns }

// HasColumn reports whether a column with this exact name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the raw cell at (row, column). Unknown columns and
// out-of-range rows read as empty.
func (t *Table) Value(row int, column string) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Numeric returns the column coerced value-by-value to float64.
// Cells that do not parse as finite numbers are NaN. The result is cached
// per column; callers must not mutate it.
func (t *Table) Numeric(column string) []float64 {
	if vals, ok := t.numeric[column]; ok {
		return vals
	}
	vals := make([]float64, len(t.rows))
	i, ok := t.index[column]
	for r := range t.rows {
		if !ok {
			vals[r] = math.NaN()
			continue
		}
		vals[r] = Coerce(t.rows[r][i])
	}
	t.numeric[column] = vals
	return vals
}

// SetDerived attaches a derived float column. Recomputing with the same
// inputs yields the same values, so overwriting is safe and idempotent.
// The slice length must equal Len(); mismatches are ignored.
func (t *Table) SetDerived(name string, values []float64) {
	if len(values) != len(t.rows) {
		return
	}
	t.derived[name] = values
}

// Derived returns a derived column previously attached with SetDerived.
func (t *Table) Derived(name string) ([]float64, bool) {
	vals, ok := t.derived[name]
	return vals, ok
}

// Coerce parses a single cell as a finite real number, returning NaN when
// it cannot. Surrounding whitespace is tolerated.
func Coerce(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// AllNaN reports whether a coerced column produced zero parseable values.
func AllNaN(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
