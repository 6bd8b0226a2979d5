package cli

import (
	"fmt"

	"wardrobe/internal/database"
	"wardrobe/internal/models"
	"wardrobe/internal/report"
)

func (s *Shell) viewItems(userID int) error {
	fmt.Fprintln(s.out, "\n=== All Clothing Items ===")

	items, err := database.GetItems(s.db, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items found in your wardrobe.")
		return nil
	}

	fmt.Fprintln(s.out)
	report.ItemListing(s.out, items)
	return nil
}

// resolveDimension asks for one of the user's dimension values, with choice 0
// creating a new value on the spot.
func (s *Shell) resolveDimension(userID int, kind database.DimensionKind) (int, error) {
	values, err := database.ListDimensionValues(s.db, userID, kind)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(s.out, "\nSelect %s:\n", kind.Label())
	fmt.Fprintf(s.out, "0. Add new %s\n", kind)
	for i, value := range values {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, value.Name)
	}

	choice, err := s.p.IntInRange(fmt.Sprintf("Enter %s number: ", kind), 0, len(values))
	if err != nil {
		return 0, err
	}
	if choice > 0 {
		return values[choice-1].ID, nil
	}

	name, err := s.p.NonEmpty(fmt.Sprintf("Enter new %s name: ", kind))
	if err != nil {
		return 0, err
	}
	value, err := database.CreateDimensionValue(s.db, userID, kind, name)
	if err != nil {
		return 0, err
	}
	return value.ID, nil
}

func (s *Shell) addItem(userID int) error {
	fmt.Fprintln(s.out, "\n=== Add New Clothing Item ===")

	name, err := s.p.NonEmpty("Enter item name: ")
	if err != nil {
		return err
	}

	ids := make(map[database.DimensionKind]int, len(database.Kinds))
	for _, kind := range database.Kinds {
		id, err := s.resolveDimension(userID, kind)
		if err != nil {
			return err
		}
		ids[kind] = id
	}

	price, err := s.p.OptionalPrice("\nEnter price (press Enter if unknown): ")
	if err != nil {
		return err
	}

	purchaseDate, err := s.p.DateOrDefault("\nEnter purchase date (dd/mm/yyyy) or press Enter for today: ", s.now())
	if err != nil {
		return err
	}

	item := models.Item{
		Name:         name,
		CategoryID:   ids[database.Category],
		ColorID:      ids[database.Color],
		SizeID:       ids[database.Size],
		BrandID:      ids[database.Brand],
		PurchaseDate: &purchaseDate,
		Price:        price,
	}
	if _, err := database.CreateItem(s.db, userID, item); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nItem added successfully!")
	return nil
}

func (s *Shell) removeItem(userID int) error {
	fmt.Fprintln(s.out, "\n=== Remove Clothing Item ===")

	items, err := database.GetItems(s.db, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items found in your wardrobe.")
		return nil
	}

	fmt.Fprintln(s.out, "\nSelect item to remove:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out)
	report.ItemListing(s.out, items)

	choice, err := s.p.IntInRange("\nEnter item number: ", 0, len(items))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}
	item := items[choice-1]

	confirmed, err := s.p.Confirm(fmt.Sprintf("\nAre you sure you want to remove %s? (y/n): ", item.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(s.out, "\nOperation cancelled.")
		return nil
	}

	if err := database.DeleteItem(s.db, userID, item.ID); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nItem removed successfully!")
	return nil
}

func (s *Shell) searchItems(userID int) error {
	fmt.Fprintln(s.out, "\n=== Search/Filter Items ===")
	fmt.Fprintln(s.out, "Filter by:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out, "1. Category")
	fmt.Fprintln(s.out, "2. Color")
	fmt.Fprintln(s.out, "3. Size")
	fmt.Fprintln(s.out, "4. Brand")
	fmt.Fprintln(s.out, "5. Purchase Date")

	choice, err := s.p.IntInRange("Enter choice: ", 0, 5)
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	if choice <= 4 {
		kind := database.Kinds[choice-1]
		value, err := s.selectDimensionValue(userID, kind)
		if err != nil || value == nil {
			return err
		}

		items, err := database.GetItemsByDimension(s.db, userID, kind, value.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(s.out, "\nNo items found matching the filter criteria.")
			return nil
		}

		fmt.Fprintln(s.out)
		report.ItemSearchListing(s.out, items, kind)
		return nil
	}

	fmt.Fprintln(s.out, "\nFilter by:")
	fmt.Fprintln(s.out, "1. Specific date")
	fmt.Fprintln(s.out, "2. Date range")

	dateChoice, err := s.p.IntInRange("Enter choice: ", 1, 2)
	if err != nil {
		return err
	}

	var items []models.Item
	if dateChoice == 1 {
		date, err := s.p.Date("Enter date (dd/mm/yyyy): ")
		if err != nil {
			return err
		}
		items, err = database.GetItemsByPurchaseDate(s.db, userID, date)
		if err != nil {
			return err
		}
	} else {
		start, err := s.p.Date("Enter start date (dd/mm/yyyy): ")
		if err != nil {
			return err
		}
		end, err := s.p.Date("Enter end date (dd/mm/yyyy): ")
		if err != nil {
			return err
		}
		items, err = database.GetItemsByPurchaseRange(s.db, userID, start, end)
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(s.out, "\nNo items found matching the filter criteria.")
		return nil
	}

	fmt.Fprintln(s.out)
	report.ItemSearchListingAll(s.out, items)
	return nil
}
