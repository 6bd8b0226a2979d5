package database

import (
	"database/sql"
	"fmt"
	"time"
)

// WearCountRow is one item with its attribute names and total wear count.
type WearCountRow struct {
	ItemName     string
	CategoryName string
	ColorName    string
	SizeName     string
	BrandName    string
	Price        *float64
	WearCount    int
}

const wearCountSelect = `
	SELECT i.name, cat.name, col.name, s.name, b.name, i.price,
	       COUNT(w.id) AS wear_count
	FROM items i
	LEFT JOIN wear_logs w ON w.item_id = i.id
	JOIN categories cat ON i.category_id = cat.id
	JOIN colors col ON i.color_id = col.id
	JOIN sizes s ON i.size_id = s.id
	JOIN brands b ON i.brand_id = b.id
`

func queryWearCounts(db *sql.DB, query string, args ...any) ([]WearCountRow, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wear counts: %w", err)
	}
	defer rows.Close()

	var results []WearCountRow
	for rows.Next() {
		var row WearCountRow
		var price sql.NullFloat64
		err := rows.Scan(
			&row.ItemName,
			&row.CategoryName,
			&row.ColorName,
			&row.SizeName,
			&row.BrandName,
			&price,
			&row.WearCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wear count row: %w", err)
		}
		if price.Valid {
			row.Price = &price.Float64
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wear counts: %w", err)
	}

	return results, nil
}

// WearCounts returns every item with its wear count, zero-wear items
// included. Order: wear count descending, ties broken by item name.
func WearCounts(db *sql.DB, userID int) ([]WearCountRow, error) {
	query := wearCountSelect + `
		WHERE i.user_id = ?
		GROUP BY i.id, i.name, cat.name, col.name, s.name, b.name, i.price
		ORDER BY wear_count DESC, i.name
	`
	return queryWearCounts(db, query, userID)
}

// WearCountsByDimension restricts WearCounts to items matching one dimension
// value.
func WearCountsByDimension(db *sql.DB, userID int, kind DimensionKind, valueID int) ([]WearCountRow, error) {
	query := wearCountSelect + fmt.Sprintf(`
		WHERE i.user_id = ? AND i.%s = ?
		GROUP BY i.id, i.name, cat.name, col.name, s.name, b.name, i.price
		ORDER BY wear_count DESC, i.name
	`, kind.ItemColumn())
	return queryWearCounts(db, query, userID, valueID)
}

// CompositionRow is one item annotated with its group's size and the user's
// total item count, ready for per-group percentage math.
type CompositionRow struct {
	GroupName    string
	ItemName     string
	CategoryName string
	ColorName    string
	SizeName     string
	BrandName    string
	GroupCount   int
	TotalCount   int
}

// Composition groups all items by the chosen dimension. Rows arrive ordered
// by group count descending, then group name, then item name, so one linear
// pass can emit the grouped report.
func Composition(db *sql.DB, userID int, kind DimensionKind) ([]CompositionRow, error) {
	meta := dimensionMetas[kind]
	query := fmt.Sprintf(`
		SELECT d.name AS group_name,
		       i.name, cat.name, col.name, s.name, b.name,
		       COUNT(i.id) OVER (PARTITION BY d.id) AS group_count,
		       COUNT(i.id) OVER () AS total_count
		FROM %s d
		JOIN items i ON i.%s = d.id
		JOIN categories cat ON i.category_id = cat.id
		JOIN colors col ON i.color_id = col.id
		JOIN sizes s ON i.size_id = s.id
		JOIN brands b ON i.brand_id = b.id
		WHERE i.user_id = ?
		ORDER BY group_count DESC, group_name, i.name
	`, meta.table, meta.itemFK)

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query composition: %w", err)
	}
	defer rows.Close()

	var results []CompositionRow
	for rows.Next() {
		var row CompositionRow
		err := rows.Scan(
			&row.GroupName,
			&row.ItemName,
			&row.CategoryName,
			&row.ColorName,
			&row.SizeName,
			&row.BrandName,
			&row.GroupCount,
			&row.TotalCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan composition row: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating composition: %w", err)
	}

	return results, nil
}

// CostPerWearRow carries the raw inputs of the cost-per-wear report; the
// report engine computes CPW and ownership duration from it.
type CostPerWearRow struct {
	ItemName     string
	Price        *float64
	WearCount    int
	PurchaseDate *time.Time
}

func CostPerWearRows(db *sql.DB, userID int, kind DimensionKind, valueID int) ([]CostPerWearRow, error) {
	query := fmt.Sprintf(`
		SELECT i.name, i.price, COUNT(w.id) AS wear_count, i.purchase_date
		FROM items i
		LEFT JOIN wear_logs w ON w.item_id = i.id
		WHERE i.user_id = ? AND i.%s = ?
		GROUP BY i.id, i.name, i.price, i.purchase_date
	`, kind.ItemColumn())

	rows, err := db.Query(query, userID, valueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost per wear: %w", err)
	}
	defer rows.Close()

	var results []CostPerWearRow
	for rows.Next() {
		var row CostPerWearRow
		var price sql.NullFloat64
		var purchaseDate sql.NullString
		err := rows.Scan(&row.ItemName, &price, &row.WearCount, &purchaseDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost per wear row: %w", err)
		}
		if price.Valid {
			row.Price = &price.Float64
		}
		if purchaseDate.Valid {
			t, err := time.Parse(dateLayout, purchaseDate.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse purchase date %q: %w", purchaseDate.String, err)
			}
			row.PurchaseDate = &t
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost per wear: %w", err)
	}

	return results, nil
}

// PurchaseRow is one dated purchase for expense bucketing.
type PurchaseRow struct {
	PurchaseDate time.Time
	ItemName     string
	ColorName    string
	BrandName    string
	Price        *float64
}

const purchaseSelect = `
	SELECT i.purchase_date, i.name, col.name, b.name, i.price
	FROM items i
	JOIN colors col ON i.color_id = col.id
	JOIN brands b ON i.brand_id = b.id
`

func queryPurchases(db *sql.DB, query string, args ...any) ([]PurchaseRow, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var results []PurchaseRow
	for rows.Next() {
		var row PurchaseRow
		var rawDate string
		var price sql.NullFloat64
		err := rows.Scan(&rawDate, &row.ItemName, &row.ColorName, &row.BrandName, &price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		row.PurchaseDate, err = time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse purchase date %q: %w", rawDate, err)
		}
		if price.Valid {
			row.Price = &price.Float64
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	return results, nil
}

// PurchasesByYear lists dated purchases in a calendar year, oldest first.
func PurchasesByYear(db *sql.DB, userID, year int) ([]PurchaseRow, error) {
	query := purchaseSelect + `
		WHERE i.user_id = ? AND strftime('%Y', i.purchase_date) = ?
		ORDER BY i.purchase_date
	`
	return queryPurchases(db, query, userID, fmt.Sprintf("%04d", year))
}

// PurchasesByMonth lists dated purchases in one month, oldest first.
func PurchasesByMonth(db *sql.DB, userID, year int, month time.Month) ([]PurchaseRow, error) {
	query := purchaseSelect + `
		WHERE i.user_id = ? AND strftime('%Y', i.purchase_date) = ? AND strftime('%m', i.purchase_date) = ?
		ORDER BY i.purchase_date
	`
	return queryPurchases(db, query, userID, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", int(month)))
}
