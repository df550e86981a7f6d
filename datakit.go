// Package datakit loads named built-in tabular datasets.
//
// Usage:
//
//	import "github.com/cwlabs/datakit"
//
//	ds, err := datakit.LoadCSVData("advertising.csv", datakit.Options{
//	    Target:         datakit.ByName("sales"),
//	    SeparateTarget: true,
//	})
//	// ds.Frame holds the feature columns, ds.Target the sales series.
//
// Datasets are CSV resources located inside packaged modules (see package
// resource), sniffed for their delimiter dialect, and parsed into typed
// tables (see package table). The built-in datasets under package data are
// addressable out of the box; callers can register their own modules in
// resource.DefaultRegistry.
package datakit

import (
	"io"

	"go.uber.org/zap"

	"github.com/cwlabs/datakit/data"
	"github.com/cwlabs/datakit/resource"
	"github.com/cwlabs/datakit/table"
	"github.com/cwlabs/datakit/types"
)

// Options configures a LoadCSVData call. The zero value loads the whole
// table from the built-in data module as UTF-8 with inferred column types.
type Options struct {
	// Target selects the label column by name or position. Required when
	// SeparateTarget is true.
	Target Target

	// DataModule identifies the container holding the CSV: either a module
	// name registered in resource.DefaultRegistry or a resource.Container.
	// Defaults to the built-in data module.
	DataModule any

	// DescrFileName, when set, loads a plain-text description resource and
	// attaches it to the result.
	DescrFileName string

	// DescrModule identifies the container holding the description file.
	// Defaults to the built-in descr module.
	DescrModule any

	// SeparateTarget splits the target column out of the table, returning
	// feature columns and the target series separately.
	SeparateTarget bool

	// Encoding is the IANA name of the text encoding ("" means UTF-8). It
	// applies to the CSV and to the description file.
	Encoding string

	// Parser holds pass-through options for the table parser.
	Parser ParserOptions

	// Logger receives debug progress logs. nil disables logging.
	Logger *zap.Logger
}

// ParserOptions are forwarded verbatim to table.Read.
type ParserOptions struct {
	// Comment, when non-zero, makes lines starting with the rune be ignored.
	Comment rune

	// TrimLeadingSpace ignores whitespace at the start of each field.
	TrimLeadingSpace bool

	// NilValues lists cell contents parsed as null.
	NilValues []string

	// Types pins named columns to a specific type.
	Types map[string]table.ColumnType

	// InferTypes overrides value-based column typing. nil means enabled.
	InferTypes *bool
}

// Dataset is the result of a load. Exactly which fields are populated is
// determined by the call's options:
//
//	SeparateTarget  DescrFileName  populated
//	false           ""             Frame
//	false           set            Frame, Descr
//	true            ""             Frame (features), Target
//	true            set            Frame (features), Target, Descr
type Dataset struct {
	// Frame is the parsed table; when the target was separated it holds only
	// the feature columns.
	Frame *table.Table

	// Target is the extracted label column, set iff SeparateTarget was true.
	Target *table.Column

	// Descr is the dataset description text, set iff DescrFileName was given.
	Descr string
}

// LoadCSVData locates fileName inside the data module, infers the file's
// delimiter dialect from its first line, parses it into a typed table, and
// optionally splits out the target column and attaches a description.
//
// Every failure is terminal and reported as a types.Error; no partial
// results are returned.
func LoadCSVData(fileName string, opts Options) (*Dataset, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dataModule := opts.DataModule
	if dataModule == nil {
		dataModule = data.ModuleName
	}

	h, err := resource.ResolveRef(dataModule, fileName)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved dataset resource", zap.String("file", fileName), zap.String("path", h.Path()))

	dialect, err := table.Sniff(h, opts.Encoding)
	if err != nil {
		return nil, err
	}
	// A comma dialect is the parser's default fast path; drop it so the
	// reader takes the same route as "no explicit dialect".
	if dialect.Delimiter == ',' {
		dialect = nil
	} else {
		logger.Debug("inferred non-default dialect", zap.String("delimiter", string(dialect.Delimiter)))
	}

	readOpts := table.DefaultReadOptions()
	readOpts.Dialect = dialect
	readOpts.Encoding = opts.Encoding
	readOpts.Comment = opts.Parser.Comment
	readOpts.TrimLeadingSpace = opts.Parser.TrimLeadingSpace
	readOpts.NilValues = opts.Parser.NilValues
	readOpts.Types = opts.Parser.Types
	if opts.Parser.InferTypes != nil {
		readOpts.InferTypes = *opts.Parser.InferTypes
	}

	tbl, err := table.Read(h, readOpts)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed table",
		zap.Int("rows", tbl.NumRows()),
		zap.Strings("columns", tbl.Columns()))

	targetName := ""
	if !opts.Target.IsZero() {
		targetName, err = opts.Target.resolve(tbl)
		if err != nil {
			return nil, err
		}
	}

	ds := &Dataset{Frame: tbl}
	if opts.SeparateTarget {
		if opts.Target.IsZero() {
			return nil, types.NewError(types.ErrTypeMismatch, "SeparateTarget requires a Target")
		}
		// Extraction revalidates existence: the guarantee holds even if the
		// selector above were skipped.
		col, ok := tbl.Column(targetName)
		if !ok {
			return nil, types.Errorf(types.ErrTargetNotFound,
				"target column %q is not among the dataset columns %v", targetName, tbl.Columns())
		}
		features, _ := tbl.Drop(targetName)
		ds.Frame = features
		ds.Target = col
	}

	if opts.DescrFileName != "" {
		descrModule := opts.DescrModule
		if descrModule == nil {
			descrModule = data.DescrModuleName
		}
		descr, err := LoadDescr(opts.DescrFileName, DescrOptions{
			Module:   descrModule,
			Encoding: opts.Encoding,
		})
		if err != nil {
			return nil, err
		}
		ds.Descr = descr
	}

	return ds, nil
}

// DescrOptions configures a LoadDescr call.
type DescrOptions struct {
	// Module identifies the container holding the description file: a module
	// name or a resource.Container. Defaults to the built-in descr module.
	Module any

	// Encoding is the IANA name of the text encoding ("" means UTF-8).
	Encoding string
}

// LoadDescr loads a dataset description resource verbatim. The text is
// decoded with the configured encoding but not parsed in any way.
func LoadDescr(fileName string, opts DescrOptions) (string, error) {
	module := opts.Module
	if module == nil {
		module = data.DescrModuleName
	}

	h, err := resource.ResolveRef(module, fileName)
	if err != nil {
		return "", err
	}

	rc, err := h.Open()
	if err != nil {
		return "", types.Errorf(types.ErrResourceNotFound, "open %s", h.Path()).WithCause(err)
	}
	defer rc.Close()

	raw, err := readDecoded(rc, opts.Encoding)
	if err != nil {
		return "", err
	}
	return raw, nil
}

// readDecoded reads all of r through the named encoding.
func readDecoded(r io.Reader, encodingName string) (string, error) {
	decoded, err := table.DecodeReader(r, encodingName)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(decoded)
	if err != nil {
		return "", types.NewError(types.ErrMalformedTable, "reading description text").WithCause(err)
	}
	return string(b), nil
}
