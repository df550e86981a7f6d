// Package table turns delimited text resources into in-memory tables.
//
// It provides the two middle stages of the dataset loading pipeline:
//
//   - Sniff / SniffDialect infer the field delimiter and quote character from
//     the first line of a resource, failing rather than guessing when no
//     consistent delimiter exists.
//   - Read parses the full resource into a Table: the first row is the
//     header, every data row must match its width, and columns are typed
//     either by inference or by an explicit ReadOptions.Types entry.
//
// A Table is transient and read-only; Drop produces a new Table sharing the
// surviving columns, which is how a label column is separated from the
// feature columns one layer up.
package table
