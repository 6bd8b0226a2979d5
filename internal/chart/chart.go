// Package chart draws the bar charts handed off by the report engine. The
// contract is deliberately small: a title, axis labels and one label/value
// series per chart.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	maxBarWidth   = 40
	maxLabelWidth = 20
)

// Bar is a labeled bar chart.
type Bar struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []float64
}

// Render draws the chart as horizontal bars scaled to the largest value.
func (b *Bar) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", b.Title)
	fmt.Fprintln(w, strings.Repeat("=", len(b.Title)))

	labelWidth := 0
	maxValue := 0.0
	for i, label := range b.Labels {
		width := len(label)
		if width > maxLabelWidth {
			width = maxLabelWidth
		}
		if width > labelWidth {
			labelWidth = width
		}
		if i < len(b.Values) && b.Values[i] > maxValue {
			maxValue = b.Values[i]
		}
	}

	for i, label := range b.Labels {
		if len(label) > maxLabelWidth {
			label = label[:maxLabelWidth-2] + ".."
		}

		var value float64
		if i < len(b.Values) {
			value = b.Values[i]
		}

		bar := 0
		if maxValue > 0 {
			bar = int(math.Round(value / maxValue * maxBarWidth))
		}
		if value > 0 && bar == 0 {
			bar = 1
		}

		fmt.Fprintf(w, "%-*s | %s %s\n", labelWidth, label, strings.Repeat("#", bar), formatValue(value))
	}

	if b.XLabel != "" || b.YLabel != "" {
		fmt.Fprintf(w, "(%s per %s)\n", b.YLabel, b.XLabel)
	}
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
