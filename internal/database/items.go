package database

import (
	"database/sql"
	"fmt"
	"time"

	"wardrobe/internal/models"
)

// itemSelect joins every dimension so listings can show attribute names. The
// four references are NOT NULL and validated on insert, so plain joins hold.
const itemSelect = `
	SELECT i.id, i.user_id, i.name, i.category_id, i.color_id, i.size_id, i.brand_id,
	       i.purchase_date, i.price, i.created_at,
	       cat.name, col.name, s.name, b.name
	FROM items i
	JOIN categories cat ON i.category_id = cat.id
	JOIN colors col ON i.color_id = col.id
	JOIN sizes s ON i.size_id = s.id
	JOIN brands b ON i.brand_id = b.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(r rowScanner) (*models.Item, error) {
	var item models.Item
	var purchaseDate sql.NullString
	var price sql.NullFloat64
	var catName, colName, sizeName, brandName string

	err := r.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.CategoryID,
		&item.ColorID,
		&item.SizeID,
		&item.BrandID,
		&purchaseDate,
		&price,
		&item.CreatedAt,
		&catName,
		&colName,
		&sizeName,
		&brandName,
	)
	if err != nil {
		return nil, err
	}

	if purchaseDate.Valid {
		t, err := time.Parse(dateLayout, purchaseDate.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse purchase date %q: %w", purchaseDate.String, err)
		}
		item.PurchaseDate = &t
	}
	if price.Valid {
		item.Price = &price.Float64
	}

	item.Category = &models.DimensionValue{ID: item.CategoryID, UserID: item.UserID, Name: catName}
	item.Color = &models.DimensionValue{ID: item.ColorID, UserID: item.UserID, Name: colName}
	item.Size = &models.DimensionValue{ID: item.SizeID, UserID: item.UserID, Name: sizeName}
	item.Brand = &models.DimensionValue{ID: item.BrandID, UserID: item.UserID, Name: brandName}

	return &item, nil
}

func queryItems(db *sql.DB, query string, args ...any) ([]models.Item, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func isoDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func CreateItem(db *sql.DB, userID int, item models.Item) (*models.Item, error) {
	// An item may only reference dimension values of its own user.
	var owned int
	ownershipQuery := `
		SELECT (SELECT COUNT(*) FROM categories WHERE id = ? AND user_id = ?)
		     + (SELECT COUNT(*) FROM colors WHERE id = ? AND user_id = ?)
		     + (SELECT COUNT(*) FROM sizes WHERE id = ? AND user_id = ?)
		     + (SELECT COUNT(*) FROM brands WHERE id = ? AND user_id = ?)
	`
	err := db.QueryRow(ownershipQuery,
		item.CategoryID, userID,
		item.ColorID, userID,
		item.SizeID, userID,
		item.BrandID, userID,
	).Scan(&owned)
	if err != nil {
		return nil, fmt.Errorf("failed to check dimension ownership: %w", err)
	}
	if owned != 4 {
		return nil, fmt.Errorf("dimension reference: %w", ErrNotFound)
	}

	query := `
		INSERT INTO items (user_id, name, category_id, color_id, size_id, brand_id, purchase_date, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query, userID, item.Name, item.CategoryID, item.ColorID,
		item.SizeID, item.BrandID, isoDate(item.PurchaseDate), item.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get item ID: %w", err)
	}

	item.ID = int(id)
	item.UserID = userID
	item.CreatedAt = time.Now()

	return &item, nil
}

func GetItems(db *sql.DB, userID int) ([]models.Item, error) {
	query := itemSelect + `
		WHERE i.user_id = ?
		ORDER BY i.category_id, i.name
	`
	return queryItems(db, query, userID)
}

func GetItem(db *sql.DB, userID, itemID int) (*models.Item, error) {
	query := itemSelect + `
		WHERE i.id = ? AND i.user_id = ?
	`

	item, err := scanItem(db.QueryRow(query, itemID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return item, nil
}

func GetItemsByDimension(db *sql.DB, userID int, kind DimensionKind, valueID int) ([]models.Item, error) {
	query := itemSelect + fmt.Sprintf(`
		WHERE i.user_id = ? AND i.%s = ?
		ORDER BY i.name
	`, kind.ItemColumn())
	return queryItems(db, query, userID, valueID)
}

func GetItemsByPurchaseDate(db *sql.DB, userID int, date time.Time) ([]models.Item, error) {
	query := itemSelect + `
		WHERE i.user_id = ? AND i.purchase_date = ?
		ORDER BY i.name
	`
	return queryItems(db, query, userID, date.Format(dateLayout))
}

func GetItemsByPurchaseRange(db *sql.DB, userID int, start, end time.Time) ([]models.Item, error) {
	query := itemSelect + `
		WHERE i.user_id = ? AND i.purchase_date BETWEEN ? AND ?
		ORDER BY i.name
	`
	return queryItems(db, query, userID, start.Format(dateLayout), end.Format(dateLayout))
}

// DeleteItem removes an item and its wear logs in one transaction so a crash
// cannot orphan wear logs between the two deletes.
func DeleteItem(db *sql.DB, userID, itemID int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM wear_logs WHERE item_id = ? AND user_id = ?`, itemID, userID); err != nil {
		return fmt.Errorf("failed to delete wear logs: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM items WHERE id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item: %w", ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item deletion: %w", err)
	}

	return nil
}
