package report

import (
	"fmt"
	"io"

	"wardrobe/internal/chart"
	"wardrobe/internal/database"
)

var compositionItemName = Column[database.CompositionRow]{
	Header: "Item Name", Width: 20,
	Value: func(r database.CompositionRow) string { return r.ItemName },
}

var compositionCategory = Column[database.CompositionRow]{
	Header: "Category", Width: 15,
	Value: func(r database.CompositionRow) string { return r.CategoryName },
}

var compositionColor = Column[database.CompositionRow]{
	Header: "Color", Width: 10,
	Value: func(r database.CompositionRow) string { return r.ColorName },
}

var compositionBrand = Column[database.CompositionRow]{
	Header: "Brand", Width: 10,
	Value: func(r database.CompositionRow) string { return r.BrandName },
}

// compositionColumns omits the grouping dimension: its value is already in
// the group sub-header.
var compositionColumns = map[database.DimensionKind][]Column[database.CompositionRow]{
	database.Category: {compositionItemName, compositionColor, compositionBrand},
	database.Color:    {compositionItemName, compositionCategory, compositionBrand},
	database.Size:     {compositionItemName, compositionCategory, compositionColor, compositionBrand},
	database.Brand:    {compositionItemName, compositionCategory, compositionColor},
}

// Composition prints per-group tables with count and share sub-headers. Rows
// arrive ordered by group count descending, then group name, then item name,
// so groups are consecutive runs.
func Composition(w io.Writer, kind database.DimensionKind, rows []database.CompositionRow) *chart.Bar {
	cols := compositionColumns[kind]
	fmt.Fprintf(w, "\nWardrobe Composition by %s:\n", kind.Label())

	bar := &chart.Bar{
		Title:  "Wardrobe Composition by " + kind.Label(),
		XLabel: kind.Label(),
		YLabel: "Item Count",
	}

	for start := 0; start < len(rows); {
		end := start
		for end < len(rows) && rows[end].GroupName == rows[start].GroupName {
			end++
		}
		group := rows[start:end]

		percentage := float64(group[0].GroupCount) / float64(group[0].TotalCount) * 100
		fmt.Fprintf(w, "\n%s - total - %d items (%.1f%%)\n", group[0].GroupName, group[0].GroupCount, percentage)
		Table(w, cols, group)

		bar.Labels = append(bar.Labels, group[0].GroupName)
		bar.Values = append(bar.Values, float64(group[0].GroupCount))

		start = end
	}

	return bar
}
