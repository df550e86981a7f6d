package datakit

import (
	"fmt"

	"github.com/cwlabs/datakit/table"
	"github.com/cwlabs/datakit/types"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetByName
	targetByIndex
)

// Target selects the label column of a dataset either by header name or by
// zero-based position. The zero value means "no target". Index 0 is a valid
// position, which is why the union carries an explicit kind instead of
// treating 0 as unset.
type Target struct {
	kind  targetKind
	name  string
	index int
}

// ByName selects the target column by its header name.
func ByName(name string) Target {
	return Target{kind: targetByName, name: name}
}

// ByIndex selects the target column by zero-based position in the header.
func ByIndex(i int) Target {
	return Target{kind: targetByIndex, index: i}
}

// IsZero reports whether no target was specified.
func (t Target) IsZero() bool { return t.kind == targetNone }

// String describes the selector for error messages.
func (t Target) String() string {
	switch t.kind {
	case targetByName:
		return fmt.Sprintf("column %q", t.name)
	case targetByIndex:
		return fmt.Sprintf("column #%d", t.index)
	default:
		return "no target"
	}
}

// resolve validates the selector against the table and returns the header
// name it designates. Positional selectors are range-checked and translated
// to a name first; name validation happens after, for both forms.
func (t Target) resolve(tbl *table.Table) (string, error) {
	name := t.name
	switch t.kind {
	case targetByIndex:
		if t.index < 0 || t.index >= tbl.NumColumns() {
			return "", types.Errorf(types.ErrTargetIndexOutOfRange,
				"target index %d out of range, table has %d columns", t.index, tbl.NumColumns())
		}
		col, _ := tbl.ColumnAt(t.index)
		name = col.Name
	case targetNone:
		return "", types.NewError(types.ErrTypeMismatch, "no target column specified")
	}
	if !tbl.HasColumn(name) {
		return "", types.Errorf(types.ErrTargetNotFound,
			"target column %q is not among the dataset columns %v", name, tbl.Columns())
	}
	return name, nil
}
