package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRendering(t *testing.T) {
	cols := []Column[string]{
		{Header: "Name", Width: 12, Value: func(s string) string { return s }},
	}

	var buf bytes.Buffer
	Table(&buf, cols, []string{"Tee", "Very Long Item Name"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "#   | Name", strings.TrimRight(lines[0], " "))
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[1])
	assert.Equal(t, "1   | Tee", strings.TrimRight(lines[2], " "))
	// Long values truncate to width-2 plus ".."
	assert.Equal(t, "2   | Very Long ..", strings.TrimRight(lines[3], " "))
}

func TestTableNumbersFromOne(t *testing.T) {
	cols := []Column[int]{
		{Header: "N", Width: 3, Value: func(int) string { return "x" }},
	}

	var buf bytes.Buffer
	Table(&buf, cols, []int{0, 0, 0})
	out := buf.String()

	assert.Contains(t, out, "1   | x")
	assert.Contains(t, out, "3   | x")

	// A second call restarts numbering, as grouped reports rely on
	buf.Reset()
	Table(&buf, cols, []int{0})
	assert.Contains(t, buf.String(), "1   | x")
}

func TestFormatHelpers(t *testing.T) {
	price := 12.5
	assert.Equal(t, "$12.50", formatPrice(&price))
	assert.Equal(t, "N/A", formatPrice(nil))
	assert.Equal(t, "N/A", formatDate(nil))
}
