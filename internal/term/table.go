package term

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table writes aligned columns to stdout. Rows are buffered until Flush.
type Table struct {
	tw *tabwriter.Writer
}

// NewTable starts a table with the given header row. Column values must not
// contain tabs or newlines.
func NewTable(headers ...string) *Table {
	t := &Table{tw: tabwriter.NewWriter(Stdout(), 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.Row(headers...)
	}
	return t
}

// Row appends a row.
func (t *Table) Row(cols ...string) {
	_, _ = fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

// Flush writes the aligned table.
func (t *Table) Flush() error {
	return t.tw.Flush()
}
