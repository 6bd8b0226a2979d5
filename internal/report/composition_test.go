package report

import (
	"bytes"
	"strings"
	"testing"

	"wardrobe/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionGrouping(t *testing.T) {
	rows := []database.CompositionRow{
		{GroupName: "Tops", ItemName: "Shirt", CategoryName: "Tops", ColorName: "Blue", BrandName: "Acme", GroupCount: 2, TotalCount: 3},
		{GroupName: "Tops", ItemName: "Tee", CategoryName: "Tops", ColorName: "Black", BrandName: "Acme", GroupCount: 2, TotalCount: 3},
		{GroupName: "Bottoms", ItemName: "Jeans", CategoryName: "Bottoms", ColorName: "Blue", BrandName: "Levis", GroupCount: 1, TotalCount: 3},
	}

	var buf bytes.Buffer
	bar := Composition(&buf, database.Category, rows)
	out := buf.String()

	assert.Contains(t, out, "Wardrobe Composition by Category:")
	assert.Contains(t, out, "Tops - total - 2 items (66.7%)")
	assert.Contains(t, out, "Bottoms - total - 1 items (33.3%)")

	// Numbering restarts per group: Jeans is row 1 of its group
	jeansLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Jeans") {
			jeansLine = line
		}
	}
	require.NotEmpty(t, jeansLine)
	assert.True(t, strings.HasPrefix(jeansLine, "1  "), "expected Jeans numbered 1, got %q", jeansLine)

	// Grouping dimension column is omitted from the table
	assert.NotContains(t, out, "Category ")

	require.Equal(t, []string{"Tops", "Bottoms"}, bar.Labels)
	require.Equal(t, []float64{2, 1}, bar.Values)
}

func TestWearCountReports(t *testing.T) {
	price := 25.0
	rows := []database.WearCountRow{
		{ItemName: "Tee", CategoryName: "Tops", ColorName: "Black", SizeName: "M", BrandName: "Acme", Price: &price, WearCount: 4},
		{ItemName: "Jeans", CategoryName: "Bottoms", ColorName: "Blue", SizeName: "32", BrandName: "Levis", WearCount: 0},
	}

	var buf bytes.Buffer
	bar := WearCountAll(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "Wear counts for all items:")
	assert.Contains(t, out, "Tee")
	assert.Contains(t, out, "Jeans")
	assert.Contains(t, out, "$25.00")
	require.Equal(t, []float64{4, 0}, bar.Values)

	buf.Reset()
	bar = WearCountByDimension(&buf, database.Color, "Black", rows[:1])
	out = buf.String()

	assert.Contains(t, out, "Wear counts for Color: Black")
	// Drilled dimension's own column is omitted
	assert.NotContains(t, out, "Color ")
	assert.Equal(t, "Wear Counts - Black", bar.Title)
}
