package report

import (
	"io"

	"wardrobe/internal/database"
	"wardrobe/internal/models"
)

// Listing column widths for the four dimensions, shared between item and
// wear-log tables.
var dimensionWidths = map[database.DimensionKind]int{
	database.Category: 9,
	database.Color:    7,
	database.Size:     4,
	database.Brand:    9,
}

func itemDimensionColumn(kind database.DimensionKind) Column[models.Item] {
	value := func(item models.Item) string {
		switch kind {
		case database.Category:
			return item.Category.Name
		case database.Color:
			return item.Color.Name
		case database.Size:
			return item.Size.Name
		default:
			return item.Brand.Name
		}
	}
	return Column[models.Item]{Header: kind.Label(), Width: dimensionWidths[kind], Value: value}
}

var itemNameColumn = Column[models.Item]{
	Header: "Name", Width: 12,
	Value: func(item models.Item) string { return item.Name },
}

var itemPriceColumn = Column[models.Item]{
	Header: "Price", Width: 9,
	Value: func(item models.Item) string { return formatPrice(item.Price) },
}

var itemPurchasedColumn = Column[models.Item]{
	Header: "Purchased", Width: 10,
	Value: func(item models.Item) string { return formatDate(item.PurchaseDate) },
}

// ItemListing prints the full wardrobe view: category first since items are
// listed in category order.
func ItemListing(w io.Writer, items []models.Item) {
	cols := []Column[models.Item]{
		itemDimensionColumn(database.Category),
		itemNameColumn,
		itemDimensionColumn(database.Color),
		itemDimensionColumn(database.Size),
		itemDimensionColumn(database.Brand),
		itemPriceColumn,
		itemPurchasedColumn,
	}
	Table(w, cols, items)
}

func itemSearchColumns(filtered *database.DimensionKind) []Column[models.Item] {
	cols := []Column[models.Item]{itemNameColumn}
	for _, kind := range database.Kinds {
		if filtered != nil && kind == *filtered {
			continue
		}
		cols = append(cols, itemDimensionColumn(kind))
	}
	return append(cols, itemPriceColumn, itemPurchasedColumn)
}

// ItemSearchListing prints dimension-filtered search results, omitting the
// filtered dimension's own column (it is redundant with the selection).
func ItemSearchListing(w io.Writer, items []models.Item, filtered database.DimensionKind) {
	Table(w, itemSearchColumns(&filtered), items)
}

// ItemSearchListingAll prints date-filtered search results with every
// column.
func ItemSearchListingAll(w io.Writer, items []models.Item) {
	Table(w, itemSearchColumns(nil), items)
}

// WornItemListing prints the item picker for the wear-date search: name and
// dimensions only, since price and purchase date play no role there.
func WornItemListing(w io.Writer, items []models.Item) {
	cols := []Column[models.Item]{itemNameColumn}
	for _, kind := range database.Kinds {
		cols = append(cols, itemDimensionColumn(kind))
	}
	Table(w, cols, items)
}

func wearLogDimensionColumn(kind database.DimensionKind) Column[models.WearLog] {
	value := func(log models.WearLog) string {
		switch kind {
		case database.Category:
			return log.Item.Category.Name
		case database.Color:
			return log.Item.Color.Name
		case database.Size:
			return log.Item.Size.Name
		default:
			return log.Item.Brand.Name
		}
	}
	return Column[models.WearLog]{Header: kind.Label(), Width: dimensionWidths[kind], Value: value}
}

var wearLogDateColumn = Column[models.WearLog]{
	Header: "Date", Width: 10,
	Value: func(log models.WearLog) string { return log.WearDate.Format("2006-01-02") },
}

var wearLogNameColumn = Column[models.WearLog]{
	Header: "Name", Width: 12,
	Value: func(log models.WearLog) string { return log.Item.Name },
}

func wearLogColumns(filtered *database.DimensionKind) []Column[models.WearLog] {
	cols := []Column[models.WearLog]{wearLogDateColumn, wearLogNameColumn}
	for _, kind := range database.Kinds {
		if filtered != nil && kind == *filtered {
			continue
		}
		cols = append(cols, wearLogDimensionColumn(kind))
	}
	return cols
}

// WearLogListing prints wear history with every column.
func WearLogListing(w io.Writer, logs []models.WearLog) {
	Table(w, wearLogColumns(nil), logs)
}

// WearLogSearchListing prints dimension-filtered wear logs, omitting the
// filtered dimension's column.
func WearLogSearchListing(w io.Writer, logs []models.WearLog, filtered database.DimensionKind) {
	Table(w, wearLogColumns(&filtered), logs)
}
