package database

import (
	"database/sql"
	"fmt"
	"time"

	"wardrobe/internal/models"
)

const wearLogSelect = `
	SELECT w.id, w.user_id, w.item_id, w.wear_date,
	       i.name, cat.name, col.name, s.name, b.name
	FROM wear_logs w
	JOIN items i ON w.item_id = i.id
	JOIN categories cat ON i.category_id = cat.id
	JOIN colors col ON i.color_id = col.id
	JOIN sizes s ON i.size_id = s.id
	JOIN brands b ON i.brand_id = b.id
`

func queryWearLogs(db *sql.DB, query string, args ...any) ([]models.WearLog, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wear logs: %w", err)
	}
	defer rows.Close()

	var logs []models.WearLog
	for rows.Next() {
		var log models.WearLog
		var wearDate string
		var itemName, catName, colName, sizeName, brandName string

		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.ItemID,
			&wearDate,
			&itemName,
			&catName,
			&colName,
			&sizeName,
			&brandName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wear log: %w", err)
		}

		log.WearDate, err = time.Parse(dateLayout, wearDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wear date %q: %w", wearDate, err)
		}

		log.Item = &models.Item{
			ID:       log.ItemID,
			UserID:   log.UserID,
			Name:     itemName,
			Category: &models.DimensionValue{Name: catName},
			Color:    &models.DimensionValue{Name: colName},
			Size:     &models.DimensionValue{Name: sizeName},
			Brand:    &models.DimensionValue{Name: brandName},
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wear logs: %w", err)
	}

	return logs, nil
}

func CreateWearLog(db *sql.DB, userID, itemID int, wearDate time.Time) (*models.WearLog, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM items WHERE id = ? AND user_id = ?)", itemID, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check item: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("item: %w", ErrNotFound)
	}

	query := `
		INSERT INTO wear_logs (user_id, item_id, wear_date)
		VALUES (?, ?, ?)
	`

	result, err := db.Exec(query, userID, itemID, wearDate.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to create wear log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get wear log ID: %w", err)
	}

	log := &models.WearLog{
		ID:       int(id),
		UserID:   userID,
		ItemID:   itemID,
		WearDate: wearDate,
	}

	return log, nil
}

func GetWearLogs(db *sql.DB, userID int) ([]models.WearLog, error) {
	query := wearLogSelect + `
		WHERE w.user_id = ?
		ORDER BY w.wear_date DESC
	`
	return queryWearLogs(db, query, userID)
}

func GetWearLogsByDimension(db *sql.DB, userID int, kind DimensionKind, valueID int) ([]models.WearLog, error) {
	query := wearLogSelect + fmt.Sprintf(`
		WHERE w.user_id = ? AND i.%s = ?
		ORDER BY w.wear_date DESC
	`, kind.ItemColumn())
	return queryWearLogs(db, query, userID, valueID)
}

func GetWearLogsByDateRange(db *sql.DB, userID int, start, end time.Time) ([]models.WearLog, error) {
	query := wearLogSelect + `
		WHERE w.user_id = ? AND w.wear_date BETWEEN ? AND ?
		ORDER BY w.wear_date DESC
	`
	return queryWearLogs(db, query, userID, start.Format(dateLayout), end.Format(dateLayout))
}

// GetWornItems lists the distinct items having at least one wear log, for
// the search-by-item flow.
func GetWornItems(db *sql.DB, userID int) ([]models.Item, error) {
	query := `
		SELECT DISTINCT i.id, i.user_id, i.name, i.category_id, i.color_id, i.size_id, i.brand_id,
		       i.purchase_date, i.price, i.created_at,
		       cat.name, col.name, s.name, b.name
		FROM items i
		JOIN wear_logs w ON w.item_id = i.id
		JOIN categories cat ON i.category_id = cat.id
		JOIN colors col ON i.color_id = col.id
		JOIN sizes s ON i.size_id = s.id
		JOIN brands b ON i.brand_id = b.id
		WHERE i.user_id = ?
		ORDER BY i.name
	`
	return queryItems(db, query, userID)
}

func GetWearDatesForItem(db *sql.DB, userID, itemID int) ([]time.Time, error) {
	query := `
		SELECT wear_date
		FROM wear_logs
		WHERE item_id = ? AND user_id = ?
		ORDER BY wear_date DESC
	`

	rows, err := db.Query(query, itemID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wear dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan wear date: %w", err)
		}
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wear date %q: %w", raw, err)
		}
		dates = append(dates, date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wear dates: %w", err)
	}

	return dates, nil
}

func DeleteWearLog(db *sql.DB, userID, wearLogID int) error {
	result, err := db.Exec(`DELETE FROM wear_logs WHERE id = ? AND user_id = ?`, wearLogID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wear log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("wear log: %w", ErrNotFound)
	}

	return nil
}

// CountWearLogsForItem reports how many wear logs reference an item.
func CountWearLogsForItem(db *sql.DB, userID, itemID int) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM wear_logs WHERE item_id = ? AND user_id = ?`, itemID, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count wear logs: %w", err)
	}
	return count, nil
}
