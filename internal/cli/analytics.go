package cli

import (
	"fmt"
	"time"

	"wardrobe/internal/database"
	"wardrobe/internal/report"
)

func (s *Shell) wearCountAnalytics(userID int) error {
	fmt.Fprintln(s.out, "\nAnalyze by:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out, "1. Category")
	fmt.Fprintln(s.out, "2. Color")
	fmt.Fprintln(s.out, "3. Size")
	fmt.Fprintln(s.out, "4. Brand")
	fmt.Fprintln(s.out, "5. All Items")

	choice, err := s.p.IntInRange("\nEnter your choice: ", 0, 5)
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	if choice == 5 {
		rows, err := database.WearCounts(s.db, userID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Fprintln(s.out, "\nNo items found.")
			return nil
		}
		report.WearCountAll(s.out, rows).Render(s.out)
		return nil
	}

	kind := database.Kinds[choice-1]
	value, err := s.selectDimensionValue(userID, kind)
	if err != nil || value == nil {
		return err
	}

	rows, err := database.WearCountsByDimension(s.db, userID, kind, value.ID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "\nNo items found.")
		return nil
	}
	report.WearCountByDimension(s.out, kind, value.Name, rows).Render(s.out)
	return nil
}

func (s *Shell) compositionAnalytics(userID int) error {
	fmt.Fprintln(s.out, "\nAnalyze by:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out, "1. Category distribution")
	fmt.Fprintln(s.out, "2. Color distribution")
	fmt.Fprintln(s.out, "3. Size distribution")
	fmt.Fprintln(s.out, "4. Brand distribution")

	choice, err := s.p.IntInRange("\nEnter your choice: ", 0, 4)
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}
	kind := database.Kinds[choice-1]

	rows, err := database.Composition(s.db, userID, kind)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(s.out, "\nNo items found for %s analysis.\n", kind.Label())
		return nil
	}
	report.Composition(s.out, kind, rows).Render(s.out)
	return nil
}

// cpwKinds are the dimensions cost-per-wear can drill into. Size is left
// out: price efficiency by size carries no signal.
var cpwKinds = []database.DimensionKind{database.Category, database.Color, database.Brand}

func (s *Shell) investmentAnalytics(userID int) error {
	fmt.Fprintln(s.out, "\nAnalyze by:")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	fmt.Fprintln(s.out, "1. Cost per wear by category")
	fmt.Fprintln(s.out, "2. Cost per wear by color")
	fmt.Fprintln(s.out, "3. Cost per wear by brand")
	fmt.Fprintln(s.out, "4. Monthly expenses through year")
	fmt.Fprintln(s.out, "5. Daily expenses through month")

	choice, err := s.p.IntInRange("\nEnter your choice: ", 0, 5)
	if err != nil {
		return err
	}

	switch {
	case choice == 0:
		return nil
	case choice <= 3:
		return s.costPerWear(userID, cpwKinds[choice-1])
	case choice == 4:
		return s.monthlyExpenses(userID)
	}
	return s.dailyExpenses(userID)
}

func (s *Shell) costPerWear(userID int, kind database.DimensionKind) error {
	value, err := s.selectDimensionValue(userID, kind)
	if err != nil || value == nil {
		return err
	}

	rows, err := database.CostPerWearRows(s.db, userID, kind, value.ID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(s.out, "No items found in %s.\n", value.Name)
		return nil
	}

	report.CostPerWear(s.out, value.Name, rows, s.now())
	return nil
}

func (s *Shell) monthlyExpenses(userID int) error {
	currentYear := s.now().Year()
	fmt.Fprintln(s.out, "\nSelect Year:")
	fmt.Fprintf(s.out, "1. %d\n", currentYear)
	fmt.Fprintf(s.out, "2. %d\n", currentYear-1)
	fmt.Fprintf(s.out, "3. %d\n", currentYear-2)

	choice, err := s.p.IntInRange("Enter choice: ", 1, 3)
	if err != nil {
		return err
	}
	year := currentYear - (choice - 1)

	rows, err := database.PurchasesByYear(s.db, userID, year)
	if err != nil {
		return err
	}
	report.MonthlyExpenses(s.out, year, rows).Render(s.out)
	return nil
}

// dailyExpenses covers the current year only, so months after the current
// one are not offered.
func (s *Shell) dailyExpenses(userID int) error {
	now := s.now()
	fmt.Fprintln(s.out, "\nSelect Month:")
	for m := time.January; m <= now.Month(); m++ {
		fmt.Fprintf(s.out, "%d. %s\n", int(m), m)
	}

	choice, err := s.p.IntInRange("Enter choice: ", 1, int(now.Month()))
	if err != nil {
		return err
	}
	month := time.Month(choice)

	rows, err := database.PurchasesByMonth(s.db, userID, now.Year(), month)
	if err != nil {
		return err
	}
	report.DailyExpenses(s.out, now.Year(), month, rows).Render(s.out)
	return nil
}
