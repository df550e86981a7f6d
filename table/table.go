package table

import (
	"fmt"
	"math"

	"github.com/cwlabs/datakit/types"
)

// ColumnType classifies the values of a parsed column.
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeInt    ColumnType = "int"
	TypeFloat  ColumnType = "float"
	TypeBool   ColumnType = "bool"
)

// Column is a named series of values. A nil element marks a null cell.
// Non-null elements are string, int64, float64, or bool according to Type.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Len returns the number of values in the column.
func (c *Column) Len() int { return len(c.Values) }

// Strings renders every value as a string. Null cells render as "".
func (c *Column) Strings() []string {
	out := make([]string, len(c.Values))
	for i, v := range c.Values {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Float64s converts the column to float64 values. Int columns widen, null
// cells become NaN. Fails for bool or string columns.
func (c *Column) Float64s() ([]float64, error) {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		switch x := v.(type) {
		case nil:
			out[i] = math.NaN()
		case float64:
			out[i] = x
		case int64:
			out[i] = float64(x)
		default:
			return nil, fmt.Errorf("column %q: value %v (%T) is not numeric", c.Name, v, v)
		}
	}
	return out, nil
}

// Ints converts the column to int64 values. Fails on nulls and on any
// non-integer value.
func (c *Column) Ints() ([]int64, error) {
	out := make([]int64, len(c.Values))
	for i, v := range c.Values {
		x, ok := v.(int64)
		if !ok {
			return nil, fmt.Errorf("column %q: value %v (%T) is not an integer", c.Name, v, v)
		}
		out[i] = x
	}
	return out, nil
}

// Equal reports whether two columns have the same name, type, and values.
func (c *Column) Equal(o *Column) bool {
	if o == nil || c.Name != o.Name || c.Type != o.Type || len(c.Values) != len(o.Values) {
		return false
	}
	for i, v := range c.Values {
		if v != o.Values[i] {
			return false
		}
	}
	return true
}

// Table is a rectangular collection of named columns parsed from a delimited
// text resource. Tables are immutable after construction; Drop returns a new
// Table sharing the surviving columns.
type Table struct {
	cols  []*Column
	index map[string]int
	nrows int
}

// New builds a Table from columns. All columns must have the same length and
// distinct names, otherwise the table is malformed.
func New(cols []*Column) (*Table, error) {
	t := &Table{
		cols:  cols,
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if i == 0 {
			t.nrows = c.Len()
		} else if c.Len() != t.nrows {
			return nil, types.Errorf(types.ErrMalformedTable,
				"column %q has %d values, expected %d", c.Name, c.Len(), t.nrows)
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, types.Errorf(types.ErrMalformedTable, "duplicate column name %q", c.Name)
		}
		t.index[c.Name] = i
	}
	return t, nil
}

// NumRows returns the number of data rows (the header is not a row).
func (t *Table) NumRows() int { return t.nrows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// ColumnAt returns the column at position i in file order.
func (t *Table) ColumnAt(i int) (*Column, bool) {
	if i < 0 || i >= len(t.cols) {
		return nil, false
	}
	return t.cols[i], true
}

// Row materializes row i as a slice of values in column order.
func (t *Table) Row(i int) []any {
	if i < 0 || i >= t.nrows {
		return nil
	}
	row := make([]any, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Values[i]
	}
	return row
}

// Drop returns a new Table without the named column. The bool result is
// false when the column does not exist; the receiver is returned unchanged
// in that case.
func (t *Table) Drop(name string) (*Table, bool) {
	i, ok := t.index[name]
	if !ok {
		return t, false
	}
	kept := make([]*Column, 0, len(t.cols)-1)
	kept = append(kept, t.cols[:i]...)
	kept = append(kept, t.cols[i+1:]...)
	// Construction cannot fail: columns came from a valid table.
	nt, _ := New(kept)
	return nt, true
}

// Equal reports whether two tables have identical columns in identical order
// with element-for-element equal values.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.cols) != len(o.cols) || t.nrows != o.nrows {
		return false
	}
	for i, c := range t.cols {
		if !c.Equal(o.cols[i]) {
			return false
		}
	}
	return true
}
