package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wardrobe/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatal("Failed to run migrations:", err)
	}

	return db
}

func createTestUser(t *testing.T, db *sql.DB) *models.User {
	user, err := CreateUser(db, "testuser", "test@example.com", "password123")
	if err != nil {
		t.Fatal("Failed to create user:", err)
	}
	return user
}

// createTestWardrobe seeds one value per dimension and returns one item
// referencing them.
func createTestWardrobe(t *testing.T, db *sql.DB, userID int) *models.Item {
	names := map[DimensionKind]string{
		Category: "Tops",
		Color:    "Blue",
		Size:     "M",
		Brand:    "Uniqlo",
	}

	ids := make(map[DimensionKind]int)
	for _, kind := range Kinds {
		value, err := CreateDimensionValue(db, userID, kind, names[kind])
		if err != nil {
			t.Fatalf("Failed to create %s: %v", kind, err)
		}
		ids[kind] = value.ID
	}

	purchaseDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	price := 29.99
	item, err := CreateItem(db, userID, models.Item{
		Name:         "Linen Shirt",
		CategoryID:   ids[Category],
		ColorID:      ids[Color],
		SizeID:       ids[Size],
		BrandID:      ids[Brand],
		PurchaseDate: &purchaseDate,
		Price:        &price,
	})
	if err != nil {
		t.Fatal("Failed to create item:", err)
	}
	return item
}

func TestUserCreationAndAuthentication(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)

	if user.Name != "testuser" {
		t.Errorf("Expected name 'testuser', got %s", user.Name)
	}

	authUser, err := AuthenticateUser(db, "test@example.com", "password123")
	if err != nil {
		t.Fatal("Failed to authenticate user:", err)
	}
	if authUser.ID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, authUser.ID)
	}

	_, err = AuthenticateUser(db, "test@example.com", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	_, err = AuthenticateUser(db, "nobody@example.com", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	fetched, err := GetUserByID(db, user.ID)
	if err != nil {
		t.Fatal("Failed to get user by ID:", err)
	}
	if fetched.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, fetched.Email)
	}

	if _, err := GetUserByID(db, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing user, got %v", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	createTestUser(t, db)

	_, err := CreateUser(db, "other", "test@example.com", "password456")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}
}

func TestDimensionValueOperations(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)

	for _, kind := range Kinds {
		value, err := CreateDimensionValue(db, user.ID, kind, "First")
		if err != nil {
			t.Fatalf("Failed to create %s: %v", kind, err)
		}

		fetched, err := GetDimensionValue(db, user.ID, kind, value.ID)
		if err != nil {
			t.Fatalf("Failed to get %s: %v", kind, err)
		}
		if fetched.Name != "First" {
			t.Errorf("Expected name 'First', got %s", fetched.Name)
		}

		if _, err := CreateDimensionValue(db, user.ID, kind, "Another"); err != nil {
			t.Fatalf("Failed to create second %s: %v", kind, err)
		}

		values, err := ListDimensionValues(db, user.ID, kind)
		if err != nil {
			t.Fatalf("Failed to list %s values: %v", kind, err)
		}
		if len(values) != 2 {
			t.Errorf("Expected 2 %s values, got %d", kind, len(values))
		}
		// ORDER BY name: "Another" before "First"
		if values[0].Name != "Another" {
			t.Errorf("Expected 'Another' first, got %s", values[0].Name)
		}
	}
}

func TestCreateDimensionValueRejectsEmptyName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := CreateDimensionValue(db, user.ID, Category, name)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Expected ErrEmptyName for %q, got %v", name, err)
		}
	}
}

func TestItemOperations(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	item := createTestWardrobe(t, db, user.ID)

	fetched, err := GetItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatal("Failed to get item:", err)
	}
	if fetched.Name != "Linen Shirt" {
		t.Errorf("Expected name 'Linen Shirt', got %s", fetched.Name)
	}
	if fetched.Category.Name != "Tops" {
		t.Errorf("Expected category 'Tops', got %s", fetched.Category.Name)
	}
	if fetched.Price == nil || *fetched.Price != 29.99 {
		t.Errorf("Expected price 29.99, got %v", fetched.Price)
	}
	if fetched.PurchaseDate == nil || fetched.PurchaseDate.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("Expected purchase date 2024-03-15, got %v", fetched.PurchaseDate)
	}

	items, err := GetItems(db, user.ID)
	if err != nil {
		t.Fatal("Failed to get items:", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}

	_, err = GetItem(db, user.ID, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestItemWithoutPriceAndDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	ref := createTestWardrobe(t, db, user.ID)

	item, err := CreateItem(db, user.ID, models.Item{
		Name:       "Gift Scarf",
		CategoryID: ref.CategoryID,
		ColorID:    ref.ColorID,
		SizeID:     ref.SizeID,
		BrandID:    ref.BrandID,
	})
	if err != nil {
		t.Fatal("Failed to create item:", err)
	}

	fetched, err := GetItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatal("Failed to get item:", err)
	}
	if fetched.Price != nil {
		t.Errorf("Expected nil price, got %v", *fetched.Price)
	}
	if fetched.PurchaseDate != nil {
		t.Errorf("Expected nil purchase date, got %v", fetched.PurchaseDate)
	}
}

func TestCreateItemRejectsForeignDimensions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := createTestUser(t, db)
	ownerItem := createTestWardrobe(t, db, owner.ID)

	other, err := CreateUser(db, "other", "other@example.com", "password123")
	if err != nil {
		t.Fatal("Failed to create second user:", err)
	}

	_, err = CreateItem(db, other.ID, models.Item{
		Name:       "Borrowed",
		CategoryID: ownerItem.CategoryID,
		ColorID:    ownerItem.ColorID,
		SizeID:     ownerItem.SizeID,
		BrandID:    ownerItem.BrandID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for foreign dimensions, got %v", err)
	}
}

func TestItemSearches(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	item := createTestWardrobe(t, db, user.ID)

	byDim, err := GetItemsByDimension(db, user.ID, Category, item.CategoryID)
	if err != nil {
		t.Fatal("Failed to search by dimension:", err)
	}
	if len(byDim) != 1 {
		t.Errorf("Expected 1 item by category, got %d", len(byDim))
	}

	byDate, err := GetItemsByPurchaseDate(db, user.ID, *item.PurchaseDate)
	if err != nil {
		t.Fatal("Failed to search by date:", err)
	}
	if len(byDate) != 1 {
		t.Errorf("Expected 1 item by date, got %d", len(byDate))
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	byRange, err := GetItemsByPurchaseRange(db, user.ID, start, end)
	if err != nil {
		t.Fatal("Failed to search by range:", err)
	}
	if len(byRange) != 1 {
		t.Errorf("Expected 1 item in range, got %d", len(byRange))
	}

	outside, err := GetItemsByPurchaseRange(db, user.ID,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal("Failed to search outside range:", err)
	}
	if len(outside) != 0 {
		t.Errorf("Expected no items outside range, got %d", len(outside))
	}
}

func TestWearLogOperations(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	item := createTestWardrobe(t, db, user.ID)

	first := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC)

	if _, err := CreateWearLog(db, user.ID, item.ID, first); err != nil {
		t.Fatal("Failed to create wear log:", err)
	}
	log, err := CreateWearLog(db, user.ID, item.ID, second)
	if err != nil {
		t.Fatal("Failed to create second wear log:", err)
	}

	logs, err := GetWearLogs(db, user.ID)
	if err != nil {
		t.Fatal("Failed to get wear logs:", err)
	}
	if len(logs) != 2 {
		t.Fatalf("Expected 2 wear logs, got %d", len(logs))
	}
	// Newest first
	if !logs[0].WearDate.Equal(second) {
		t.Errorf("Expected newest log first, got %v", logs[0].WearDate)
	}
	if logs[0].Item.Name != "Linen Shirt" {
		t.Errorf("Expected item name on log, got %s", logs[0].Item.Name)
	}

	dates, err := GetWearDatesForItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatal("Failed to get wear dates:", err)
	}
	if len(dates) != 2 || !dates[0].Equal(second) {
		t.Errorf("Expected 2 dates newest first, got %v", dates)
	}

	worn, err := GetWornItems(db, user.ID)
	if err != nil {
		t.Fatal("Failed to get worn items:", err)
	}
	if len(worn) != 1 {
		t.Errorf("Expected 1 worn item, got %d", len(worn))
	}

	if err := DeleteWearLog(db, user.ID, log.ID); err != nil {
		t.Fatal("Failed to delete wear log:", err)
	}
	count, err := CountWearLogsForItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatal("Failed to count wear logs:", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 wear log after delete, got %d", count)
	}

	if err := DeleteWearLog(db, user.ID, log.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestWearLogSearches(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	item := createTestWardrobe(t, db, user.ID)

	date := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	if _, err := CreateWearLog(db, user.ID, item.ID, date); err != nil {
		t.Fatal("Failed to create wear log:", err)
	}

	byDim, err := GetWearLogsByDimension(db, user.ID, Color, item.ColorID)
	if err != nil {
		t.Fatal("Failed to search logs by dimension:", err)
	}
	if len(byDim) != 1 {
		t.Errorf("Expected 1 log by color, got %d", len(byDim))
	}

	inRange, err := GetWearLogsByDateRange(db, user.ID,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal("Failed to search logs by range:", err)
	}
	if len(inRange) != 1 {
		t.Errorf("Expected 1 log in range, got %d", len(inRange))
	}

	outside, err := GetWearLogsByDateRange(db, user.ID,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal("Failed to search logs outside range:", err)
	}
	if len(outside) != 0 {
		t.Errorf("Expected no logs outside range, got %d", len(outside))
	}
}

func TestCreateWearLogRequiresOwnedItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)

	_, err := CreateWearLog(db, user.ID, 42, time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing item, got %v", err)
	}
}

func TestDeleteItemCascadesWearLogs(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db)
	item := createTestWardrobe(t, db, user.ID)

	for day := 1; day <= 3; day++ {
		date := time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
		if _, err := CreateWearLog(db, user.ID, item.ID, date); err != nil {
			t.Fatal("Failed to create wear log:", err)
		}
	}

	if err := DeleteItem(db, user.ID, item.ID); err != nil {
		t.Fatal("Failed to delete item:", err)
	}

	count, err := CountWearLogsForItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatal("Failed to count wear logs:", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 wear logs after cascade delete, got %d", count)
	}

	if err := DeleteItem(db, user.ID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting missing item, got %v", err)
	}
}

func TestAcquireLockRefusesSecondSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.db.lock")

	lock, err := AcquireLock(path)
	if err != nil {
		t.Fatal("Failed to acquire lock:", err)
	}

	if _, err := AcquireLock(path); !errors.Is(err, ErrLocked) {
		t.Errorf("Expected ErrLocked on second acquire, got %v", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatal("Failed to release lock:", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected lock file to be removed")
	}

	relock, err := AcquireLock(path)
	if err != nil {
		t.Fatal("Failed to reacquire lock after release:", err)
	}
	relock.Release()
}
