package table

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cwlabs/datakit/resource"
	"github.com/cwlabs/datakit/types"
)

// ReadOptions configures parsing of a delimited resource into a Table.
type ReadOptions struct {
	// Dialect overrides the delimiter. nil means the default comma-separated
	// fast path.
	Dialect *Dialect

	// Encoding is the IANA name of the text encoding ("" means UTF-8).
	Encoding string

	// Comment, when non-zero, makes lines starting with the rune be ignored.
	Comment rune

	// TrimLeadingSpace ignores whitespace at the start of each field.
	TrimLeadingSpace bool

	// NilValues lists cell contents parsed as null. Empty cells are always
	// null regardless of this list.
	NilValues []string

	// Types pins named columns to a specific type. Cells that cannot be
	// converted make the table malformed.
	Types map[string]ColumnType

	// InferTypes enables value-based column typing (bool, int, float, or
	// string chosen from the data). When false, untyped columns stay strings.
	InferTypes bool
}

// DefaultReadOptions returns the options used when the caller passes none:
// UTF-8 text, comma fast path, inferred column types.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Encoding:   "utf-8",
		InferTypes: true,
	}
}

// Read parses the whole resource as delimited text. The first record is
// always the header row defining column names. Ragged rows, undecodable
// text, and unconvertible cells fail with MALFORMED_TABLE.
func Read(h *resource.Handle, opts ReadOptions) (*Table, error) {
	rc, err := h.Open()
	if err != nil {
		return nil, types.Errorf(types.ErrResourceNotFound, "open %s", h.Path()).WithCause(err)
	}
	defer rc.Close()

	r, err := DecodeReader(rc, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = ','
	if opts.Dialect != nil && opts.Dialect.Delimiter != 0 {
		cr.Comma = opts.Dialect.Delimiter
	}
	if opts.Comment != 0 {
		cr.Comment = opts.Comment
	}
	cr.TrimLeadingSpace = opts.TrimLeadingSpace
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, types.Errorf(types.ErrMalformedTable, "%s is empty, missing header row", h.Path())
	}
	if err != nil {
		return nil, types.Errorf(types.ErrMalformedTable, "reading header of %s", h.Path()).WithCause(err)
	}

	names := make([]string, len(header))
	for i, f := range header {
		names[i] = strings.TrimSpace(f)
	}

	// Column-major raw cells. The csv reader enforces rectangularity against
	// the header width.
	raw := make([][]string, len(names))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.Errorf(types.ErrMalformedTable, "reading %s", h.Path()).WithCause(err)
		}
		for i := range names {
			raw[i] = append(raw[i], record[i])
		}
	}

	isNull := nullPredicate(opts.NilValues)

	cols := make([]*Column, len(names))
	for i, name := range names {
		ct, pinned := opts.Types[name]
		if !pinned {
			if opts.InferTypes {
				ct = inferColumnType(raw[i], isNull)
			} else {
				ct = TypeString
			}
		}
		col, err := buildColumn(name, ct, raw[i], isNull, pinned)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return New(cols)
}

// nullPredicate builds the null test from the configured markers. Cells are
// compared after trimming surrounding whitespace.
func nullPredicate(markers []string) func(string) bool {
	set := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		set[m] = struct{}{}
	}
	return func(s string) bool {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return true
		}
		_, ok := set[trimmed]
		return ok
	}
}

// inferColumnType picks the narrowest type that every non-null cell of the
// column parses as, trying int, float, then bool, defaulting to string.
func inferColumnType(raw []string, isNull func(string) bool) ColumnType {
	sawValue := false
	canInt, canFloat, canBool := true, true, true

	for _, s := range raw {
		if isNull(s) {
			continue
		}
		sawValue = true
		v := strings.TrimSpace(s)
		if canInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				canFloat = false
			}
		}
		if canBool && !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
			canBool = false
		}
		if !canInt && !canFloat && !canBool {
			break
		}
	}

	switch {
	case !sawValue:
		return TypeString
	case canInt:
		return TypeInt
	case canFloat:
		return TypeFloat
	case canBool:
		return TypeBool
	default:
		return TypeString
	}
}

// buildColumn converts raw cells to typed values. For pinned types a cell
// that does not convert is a malformed table; inferred types convert by
// construction.
func buildColumn(name string, ct ColumnType, raw []string, isNull func(string) bool, pinned bool) (*Column, error) {
	values := make([]any, len(raw))
	for i, s := range raw {
		if isNull(s) {
			continue
		}
		v := strings.TrimSpace(s)
		switch ct {
		case TypeInt:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, convertError(name, i, v, ct, pinned)
			}
			values[i] = n
		case TypeFloat:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, convertError(name, i, v, ct, pinned)
			}
			values[i] = f
		case TypeBool:
			switch {
			case strings.EqualFold(v, "true"):
				values[i] = true
			case strings.EqualFold(v, "false"):
				values[i] = false
			default:
				return nil, convertError(name, i, v, ct, pinned)
			}
		default:
			values[i] = s
		}
	}
	return &Column{Name: name, Type: ct, Values: values}, nil
}

func convertError(name string, row int, value string, ct ColumnType, pinned bool) error {
	kind := "inferred"
	if pinned {
		kind = "declared"
	}
	return types.Errorf(types.ErrMalformedTable,
		"column %q row %d: %q does not parse as %s type %s", name, row, value, kind, ct)
}
