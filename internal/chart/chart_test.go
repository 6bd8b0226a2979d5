package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScalesBars(t *testing.T) {
	bar := &Bar{
		Title:  "Wear Counts",
		XLabel: "Item",
		YLabel: "Wear Count",
		Labels: []string{"Tee", "Jeans", "Coat"},
		Values: []float64{10, 5, 0},
	}

	var buf bytes.Buffer
	bar.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "Wear Counts\n===========")
	assert.Contains(t, out, "(Wear Count per Item)")

	lines := strings.Split(out, "\n")
	var teeBar, jeansBar, coatBar int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Tee"):
			teeBar = strings.Count(line, "#")
		case strings.HasPrefix(line, "Jeans"):
			jeansBar = strings.Count(line, "#")
		case strings.HasPrefix(line, "Coat"):
			coatBar = strings.Count(line, "#")
		}
	}

	assert.Equal(t, 40, teeBar)
	assert.Equal(t, 20, jeansBar)
	assert.Zero(t, coatBar)
}

func TestRenderTruncatesLongLabels(t *testing.T) {
	bar := &Bar{
		Title:  "Expenses",
		Labels: []string{"An Exceptionally Long Label"},
		Values: []float64{1},
	}

	var buf bytes.Buffer
	bar.Render(&buf)

	assert.Contains(t, buf.String(), "An Exceptionally L..")
	assert.NotContains(t, buf.String(), "Long Label")
}

func TestRenderSmallValueGetsVisibleBar(t *testing.T) {
	bar := &Bar{
		Title:  "Amounts",
		Labels: []string{"Big", "Tiny"},
		Values: []float64{1000, 1},
	}

	var buf bytes.Buffer
	bar.Render(&buf)

	require.Contains(t, buf.String(), "Tiny | # 1")
}

func TestRenderValueFormatting(t *testing.T) {
	bar := &Bar{
		Title:  "Mixed",
		Labels: []string{"Whole", "Frac"},
		Values: []float64{3, 2.5},
	}

	var buf bytes.Buffer
	bar.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, " 3\n")
	assert.Contains(t, out, " 2.50\n")
}
