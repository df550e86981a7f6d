package table

import (
	prettytable "github.com/jedib0t/go-pretty/v6/table"
)

// Render formats the table for human inspection. Null cells render empty.
func (t *Table) Render() string {
	w := prettytable.NewWriter()

	header := make(prettytable.Row, len(t.cols))
	for i, c := range t.cols {
		header[i] = c.Name
	}
	w.AppendHeader(header)

	for i := 0; i < t.nrows; i++ {
		row := make(prettytable.Row, len(t.cols))
		for j, c := range t.cols {
			if v := c.Values[i]; v != nil {
				row[j] = v
			} else {
				row[j] = ""
			}
		}
		w.AppendRow(row)
	}

	return w.Render()
}
