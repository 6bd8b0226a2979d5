package models

import (
	"time"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DimensionValue is one value of an item attribute axis (category, color,
// size or brand). The four axes live in separate tables with identical shape.
type DimensionValue struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Item struct {
	ID           int        `json:"id" db:"id"`
	UserID       int        `json:"user_id" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	CategoryID   int        `json:"category_id" db:"category_id"`
	ColorID      int        `json:"color_id" db:"color_id"`
	SizeID       int        `json:"size_id" db:"size_id"`
	BrandID      int        `json:"brand_id" db:"brand_id"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	Price        *float64   `json:"price,omitempty" db:"price"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	Category *DimensionValue `json:"category,omitempty"`
	Color    *DimensionValue `json:"color,omitempty"`
	Size     *DimensionValue `json:"size,omitempty"`
	Brand    *DimensionValue `json:"brand,omitempty"`
}

type WearLog struct {
	ID       int       `json:"id" db:"id"`
	UserID   int       `json:"user_id" db:"user_id"`
	ItemID   int       `json:"item_id" db:"item_id"`
	WearDate time.Time `json:"wear_date" db:"wear_date"`

	Item *Item `json:"item,omitempty"`
}
