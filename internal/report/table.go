// Package report turns store rows into the fixed-width pipe-delimited tables
// and chart series of the terminal reports. Column sets are declarative:
// each report owns an ordered list of column descriptors per dimension
// choice instead of branching per case.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Column is one table column: header text, fixed width and a value
// extractor for a row.
type Column[R any] struct {
	Header string
	Width  int
	Value  func(R) string
}

// Table writes rows in the shared report layout: an index column, a header,
// a dash divider, then one line per row numbered from 1. Grouped reports
// call it once per group so numbering restarts.
func Table[R any](w io.Writer, cols []Column[R], rows []R) {
	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, fmt.Sprintf("%-3s", "#"))
	for _, col := range cols {
		headers = append(headers, fmt.Sprintf("%-*s", col.Width, col.Header))
	}
	header := strings.Join(headers, " | ")

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for i, row := range rows {
		parts := make([]string, 0, len(cols)+1)
		parts = append(parts, fmt.Sprintf("%-3d", i+1))
		for _, col := range cols {
			parts = append(parts, cell(col.Value(row), col.Width))
		}
		fmt.Fprintln(w, strings.Join(parts, " | "))
	}
}

// cell pads a value to width, truncating long values to width-2 plus "..".
func cell(val string, width int) string {
	if len(val) > width {
		val = val[:width-2] + ".."
	}
	return fmt.Sprintf("%-*s", width, val)
}

func formatPrice(price *float64) string {
	if price == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *price)
}

func formatDate(date *time.Time) string {
	if date == nil {
		return "N/A"
	}
	return date.Format("2006-01-02")
}
