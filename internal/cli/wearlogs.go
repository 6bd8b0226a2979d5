package cli

import (
	"fmt"

	"wardrobe/internal/database"
	"wardrobe/internal/report"
)

func (s *Shell) viewWearHistory(userID int) error {
	fmt.Fprintln(s.out, "\n=== Wear History ===")

	logs, err := database.GetWearLogs(s.db, userID)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(s.out, "No wear history found.")
		return nil
	}

	fmt.Fprintln(s.out)
	report.WearLogListing(s.out, logs)
	return nil
}

func (s *Shell) addWearEntry(userID int) error {
	fmt.Fprintln(s.out, "\n=== Log Item Wear ===")

	items, err := database.GetItems(s.db, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items found in your wardrobe.")
		return nil
	}

	fmt.Fprintln(s.out, "\nSelect item:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	for i, item := range items {
		fmt.Fprintf(s.out, "%d. %s (%s)\n", i+1, item.Name, item.Category.Name)
	}

	choice, err := s.p.IntInRange("\nEnter item number: ", 0, len(items))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}
	item := items[choice-1]

	wearDate, err := s.p.DateOrDefault("\nEnter wear date (dd/mm/yyyy) or press Enter for today: ", s.now())
	if err != nil {
		return err
	}

	if _, err := database.CreateWearLog(s.db, userID, item.ID, wearDate); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nWear logged successfully for %s on %s!\n", item.Name, wearDate.Format("2006-01-02"))
	return nil
}

func (s *Shell) removeWearEntry(userID int) error {
	fmt.Fprintln(s.out, "\n=== Remove Wear Log Entry ===")

	logs, err := database.GetWearLogs(s.db, userID)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(s.out, "No wear logs found.")
		return nil
	}

	fmt.Fprintln(s.out, "\nSelect log to remove:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out)
	report.WearLogListing(s.out, logs)

	choice, err := s.p.IntInRange("\nEnter log number: ", 0, len(logs))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	confirmed, err := s.p.Confirm("\nAre you sure you want to remove this wear log? (y/n): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(s.out, "\nOperation cancelled.")
		return nil
	}

	if err := database.DeleteWearLog(s.db, userID, logs[choice-1].ID); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nWear log removed successfully!")
	return nil
}

func (s *Shell) searchWearLogs(userID int) error {
	fmt.Fprintln(s.out, "\n=== Search/Filter Wear Logs ===")
	fmt.Fprintln(s.out, "Filter by:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out, "1. Item Name")
	fmt.Fprintln(s.out, "2. Category")
	fmt.Fprintln(s.out, "3. Color")
	fmt.Fprintln(s.out, "4. Size")
	fmt.Fprintln(s.out, "5. Brand")
	fmt.Fprintln(s.out, "6. Wear Date Range")

	choice, err := s.p.IntInRange("Enter choice: ", 0, 6)
	if err != nil {
		return err
	}

	switch {
	case choice == 0:
		return nil
	case choice == 1:
		return s.searchWearLogsByItem(userID)
	case choice <= 5:
		kind := database.Kinds[choice-2]
		value, err := s.selectDimensionValue(userID, kind)
		if err != nil || value == nil {
			return err
		}

		logs, err := database.GetWearLogsByDimension(s.db, userID, kind, value.ID)
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Fprintln(s.out, "\nNo matching wear logs found.")
			return nil
		}

		fmt.Fprintln(s.out)
		report.WearLogSearchListing(s.out, logs, kind)
		return nil
	}

	start, err := s.p.Date("Enter start date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	end, err := s.p.Date("Enter end date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}

	logs, err := database.GetWearLogsByDateRange(s.db, userID, start, end)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(s.out, "\nNo matching wear logs found.")
		return nil
	}

	fmt.Fprintln(s.out)
	report.WearLogListing(s.out, logs)
	return nil
}

// searchWearLogsByItem picks one worn item and prints its bare wear dates.
func (s *Shell) searchWearLogsByItem(userID int) error {
	items, err := database.GetWornItems(s.db, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "\nNo matching wear logs found.")
		return nil
	}

	fmt.Fprintln(s.out, "\nSelect item:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out)
	report.WornItemListing(s.out, items)

	choice, err := s.p.IntInRange("\nEnter item number: ", 0, len(items))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}
	item := items[choice-1]

	dates, err := database.GetWearDatesForItem(s.db, userID, item.ID)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		fmt.Fprintln(s.out, "\nNo wear logs found for this item.")
		return nil
	}

	fmt.Fprintf(s.out, "\nWear Dates for %s:\n", item.Name)
	for _, date := range dates {
		fmt.Fprintf(s.out, "- %s\n", date.Format("2006-01-02"))
	}
	return nil
}
