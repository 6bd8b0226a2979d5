package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wardrobe/internal/models"
)

// DimensionKind selects one of the four item attribute axes. All four are
// stored in separate tables with identical shape, so every query against a
// dimension goes through the metadata table below.
type DimensionKind int

const (
	Category DimensionKind = iota
	Color
	Size
	Brand
)

// Kinds lists all dimensions in menu order.
var Kinds = []DimensionKind{Category, Color, Size, Brand}

type dimensionMeta struct {
	table  string // dimension table name
	itemFK string // column on items referencing it
	label  string // display label
}

var dimensionMetas = map[DimensionKind]dimensionMeta{
	Category: {table: "categories", itemFK: "category_id", label: "Category"},
	Color:    {table: "colors", itemFK: "color_id", label: "Color"},
	Size:     {table: "sizes", itemFK: "size_id", label: "Size"},
	Brand:    {table: "brands", itemFK: "brand_id", label: "Brand"},
}

// Label returns the display name of the dimension, e.g. "Category".
func (k DimensionKind) Label() string {
	return dimensionMetas[k].label
}

// ItemColumn returns the items column referencing this dimension.
func (k DimensionKind) ItemColumn() string {
	return dimensionMetas[k].itemFK
}

func (k DimensionKind) String() string {
	return strings.ToLower(dimensionMetas[k].label)
}

func ListDimensionValues(db *sql.DB, userID int, kind DimensionKind) ([]models.DimensionValue, error) {
	meta := dimensionMetas[kind]
	query := fmt.Sprintf(`
		SELECT id, user_id, name, created_at
		FROM %s
		WHERE user_id = ?
		ORDER BY name
	`, meta.table)

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s values: %w", kind, err)
	}
	defer rows.Close()

	var values []models.DimensionValue
	for rows.Next() {
		var value models.DimensionValue
		err := rows.Scan(
			&value.ID,
			&value.UserID,
			&value.Name,
			&value.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s value: %w", kind, err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s values: %w", kind, err)
	}

	return values, nil
}

func CreateDimensionValue(db *sql.DB, userID int, kind DimensionKind, name string) (*models.DimensionValue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", kind, ErrEmptyName)
	}

	meta := dimensionMetas[kind]
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name)
		VALUES (?, ?)
	`, meta.table)

	result, err := db.Exec(query, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s value: %w", kind, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s ID: %w", kind, err)
	}

	value := &models.DimensionValue{
		ID:        int(id),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	return value, nil
}

func GetDimensionValue(db *sql.DB, userID int, kind DimensionKind, valueID int) (*models.DimensionValue, error) {
	meta := dimensionMetas[kind]
	value := &models.DimensionValue{}
	query := fmt.Sprintf(`
		SELECT id, user_id, name, created_at
		FROM %s
		WHERE id = ? AND user_id = ?
	`, meta.table)

	err := db.QueryRow(query, valueID, userID).Scan(
		&value.ID,
		&value.UserID,
		&value.Name,
		&value.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", kind, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query %s value: %w", kind, err)
	}

	return value, nil
}
