// Package reflection provides a column-oriented table of diffraction
// observations. Every column of a table has exactly Size() rows.
package reflection

import (
	"fmt"

	errs "github.com/lexlapax/xmerge/pkg/errors"
)

// Well-known column names.
const (
	ColumnMillerIndex           = "miller_index"
	ColumnMillerIndexAsymmetric = "miller_index_asymmetric"
	ColumnIntensitySumValue     = "intensity.sum.value"
	ColumnIntensitySumVariance  = "intensity.sum.variance"
	ColumnID                    = "id"
)

// Table is a set of named, typed columns sharing a row count. A Table is not
// safe for concurrent mutation.
type Table struct {
	size    int
	order   []string
	columns map[string]Column
}

// New creates an empty table.
func New() *Table {
	return &Table{columns: make(map[string]Column)}
}

// Size returns the number of rows.
func (t *Table) Size() int {
	return t.size
}

// Keys returns the column names in insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.order...)
}

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Get returns the named column. The returned column shares storage with the table.
func (t *Table) Get(name string) (Column, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, &errs.MissingColumnError{Column: name}
	}
	return col, nil
}

// Set adds or replaces a column. The first column of a table without rows
// defines the row count; every other column must match it.
func (t *Table) Set(name string, col Column) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", errs.ErrInvalidInput)
	}
	if col == nil {
		return fmt.Errorf("%w: nil column %q", errs.ErrInvalidInput, name)
	}
	if len(t.columns) == 0 && t.size == 0 {
		t.size = col.Len()
	} else if col.Len() != t.size {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			errs.ErrColumnLength, name, col.Len(), t.size)
	}

	if _, exists := t.columns[name]; !exists {
		t.order = append(t.order, name)
	}
	t.columns[name] = col
	return nil
}

// Delete removes a column from every row.
func (t *Table) Delete(name string) error {
	if _, ok := t.columns[name]; !ok {
		return &errs.MissingColumnError{Column: name}
	}
	delete(t.columns, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// MillerIndices returns the named column as Miller indices.
func (t *Table) MillerIndices(name string) (MillerIndexColumn, error) {
	col, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(MillerIndexColumn)
	if !ok {
		return nil, columnTypeError(name, KindMillerIndex, col.Kind())
	}
	return c, nil
}

// Floats returns the named column as floats.
func (t *Table) Floats(name string) (FloatColumn, error) {
	col, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(FloatColumn)
	if !ok {
		return nil, columnTypeError(name, KindFloat, col.Kind())
	}
	return c, nil
}

// Ints returns the named column as integers.
func (t *Table) Ints(name string) (IntColumn, error) {
	col, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(IntColumn)
	if !ok {
		return nil, columnTypeError(name, KindInt, col.Kind())
	}
	return c, nil
}

// Strings returns the named column as strings.
func (t *Table) Strings(name string) (StringColumn, error) {
	col, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(StringColumn)
	if !ok {
		return nil, columnTypeError(name, KindString, col.Kind())
	}
	return c, nil
}

func columnTypeError(name string, want, got Kind) error {
	return fmt.Errorf("%w: column %q is %s, not %s", errs.ErrColumnType, name, got, want)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		size:    t.size,
		order:   append([]string(nil), t.order...),
		columns: make(map[string]Column, len(t.columns)),
	}
	for name, col := range t.columns {
		out.columns[name] = col.Clone()
	}
	return out
}

// Select returns a new table holding the given rows, in the given order.
func (t *Table) Select(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.size {
			return nil, fmt.Errorf("%w: row %d out of range [0,%d)", errs.ErrInvalidInput, r, t.size)
		}
	}
	out := &Table{
		size:    len(rows),
		order:   append([]string(nil), t.order...),
		columns: make(map[string]Column, len(t.columns)),
	}
	for name, col := range t.columns {
		out.columns[name] = col.selectRows(rows)
	}
	return out, nil
}

// Split divides the table into n tables of consecutive rows whose sizes
// differ by at most one. Empty parts are omitted.
func Split(t *Table, n int) ([]*Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: partition count must be positive, got %d", errs.ErrInvalidInput, n)
	}
	var parts []*Table
	start := 0
	for i := 0; i < n; i++ {
		count := t.size / n
		if i < t.size%n {
			count++
		}
		if count == 0 {
			continue
		}
		rows := make([]int, count)
		for j := range rows {
			rows[j] = start + j
		}
		start += count

		part, err := t.Select(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Concat joins tables row-wise. All tables must have the same columns with
// the same kinds; the column order of the first table is kept.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New(), nil
	}
	out := tables[0].Clone()
	for i, t := range tables[1:] {
		if len(t.columns) != len(out.columns) {
			return nil, fmt.Errorf("%w: table %d has %d columns, want %d",
				errs.ErrInvalidInput, i+1, len(t.columns), len(out.columns))
		}
		for name, col := range out.columns {
			other, ok := t.columns[name]
			if !ok {
				return nil, &errs.MissingColumnError{Column: name}
			}
			if other.Kind() != col.Kind() {
				return nil, columnTypeError(name, col.Kind(), other.Kind())
			}
			out.columns[name] = col.appendColumn(other)
		}
		out.size += t.size
	}
	return out, nil
}
