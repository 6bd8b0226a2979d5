package report

import (
	"fmt"
	"io"

	"wardrobe/internal/chart"
	"wardrobe/internal/database"
)

var wearCountItemName = Column[database.WearCountRow]{
	Header: "Item Name", Width: 20,
	Value: func(r database.WearCountRow) string { return r.ItemName },
}

var wearCountCategory = Column[database.WearCountRow]{
	Header: "Category", Width: 15,
	Value: func(r database.WearCountRow) string { return r.CategoryName },
}

var wearCountColor = Column[database.WearCountRow]{
	Header: "Color", Width: 10,
	Value: func(r database.WearCountRow) string { return r.ColorName },
}

var wearCountBrand = Column[database.WearCountRow]{
	Header: "Brand", Width: 10,
	Value: func(r database.WearCountRow) string { return r.BrandName },
}

var wearCountPrice = Column[database.WearCountRow]{
	Header: "Price", Width: 10,
	Value: func(r database.WearCountRow) string { return formatPrice(r.Price) },
}

var wearCountCount = Column[database.WearCountRow]{
	Header: "Wear Count", Width: 10,
	Value: func(r database.WearCountRow) string { return fmt.Sprintf("%d", r.WearCount) },
}

// wearCountColumns maps the drilled dimension to its column set. The drilled
// dimension is the filter, so its own column is omitted where redundant.
var wearCountColumns = map[database.DimensionKind][]Column[database.WearCountRow]{
	database.Category: {wearCountItemName, wearCountColor, wearCountBrand, wearCountCount},
	database.Color:    {wearCountItemName, wearCountCategory, wearCountBrand, wearCountCount},
	database.Size:     {wearCountItemName, wearCountCategory, wearCountColor, wearCountBrand, wearCountCount},
	database.Brand:    {wearCountItemName, wearCountCategory, wearCountColor, wearCountCount},
}

var wearCountAllColumns = []Column[database.WearCountRow]{
	wearCountItemName, wearCountColor, wearCountBrand, wearCountPrice, wearCountCount,
}

func wearCountChart(title string, rows []database.WearCountRow) *chart.Bar {
	bar := &chart.Bar{Title: title, XLabel: "Item", YLabel: "Wear Count"}
	for _, row := range rows {
		bar.Labels = append(bar.Labels, row.ItemName)
		bar.Values = append(bar.Values, float64(row.WearCount))
	}
	return bar
}

// WearCountAll prints the wear-count table over every item and returns the
// chart series. Rows arrive sorted by wear count descending.
func WearCountAll(w io.Writer, rows []database.WearCountRow) *chart.Bar {
	fmt.Fprintln(w, "\nWear counts for all items:")
	Table(w, wearCountAllColumns, rows)
	return wearCountChart("Wear Counts - All Items", rows)
}

// WearCountByDimension prints the wear-count table for one dimension value.
func WearCountByDimension(w io.Writer, kind database.DimensionKind, valueName string, rows []database.WearCountRow) *chart.Bar {
	fmt.Fprintf(w, "\nWear counts for %s: %s\n", kind.Label(), valueName)
	Table(w, wearCountColumns[kind], rows)
	return wearCountChart("Wear Counts - "+valueName, rows)
}
