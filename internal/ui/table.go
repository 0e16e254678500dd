package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table buffers rows and prints them in aligned columns on Flush.
// Cells are formatted with Cell.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	return &Table{out: out, headers: headers}
}

// Row appends a row. Missing trailing cells print as "-", extra cells are dropped.
func (t *Table) Row(values ...any) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(values) {
			row[i] = Cell(values[i])
		} else {
			row[i] = "-"
		}
	}
	t.rows = append(t.rows, row)
}

// Len reports the number of buffered rows.
func (t *Table) Len() int { return len(t.rows) }

// Flush writes the header and all buffered rows.
func (t *Table) Flush() error {
	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(t.headers, "\t")); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	t.rows = nil
	return tw.Flush()
}

// Cell renders a value for a table column: string slices are comma-joined,
// booleans print as yes/no and empty values print as "-".
func Cell(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
	case string:
		s = v
	case []string:
		s = strings.Join(v, ",")
	case bool:
		s = "no"
		if v {
			s = "yes"
		}
	case error:
		s = v.Error()
	default:
		s = fmt.Sprint(v)
	}
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
