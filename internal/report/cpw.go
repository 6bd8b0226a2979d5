package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"wardrobe/internal/database"
)

// CPW is a cost-per-wear value. Unbounded marks never-worn items, which sort
// after every finite value: an unworn purchase is the least cost-efficient.
type CPW struct {
	Unbounded bool
	Value     float64
}

// ComputeCPW divides price by wear count, unbounded at zero wears.
func ComputeCPW(price float64, wears int) CPW {
	if wears == 0 {
		return CPW{Unbounded: true}
	}
	return CPW{Value: price / float64(wears)}
}

// Compare orders finite values ascending with unbounded last.
func (c CPW) Compare(o CPW) int {
	switch {
	case c.Unbounded && o.Unbounded:
		return 0
	case c.Unbounded:
		return 1
	case o.Unbounded:
		return -1
	case c.Value < o.Value:
		return -1
	case c.Value > o.Value:
		return 1
	}
	return 0
}

func (c CPW) String() string {
	if c.Unbounded {
		return "No wears"
	}
	return fmt.Sprintf("$%.2f", c.Value)
}

// OwnershipDuration renders time owned since purchase using calendar month
// arithmetic: a month counts only once the day-of-month has passed. Under
// one month the duration is given in days, under a year in months, then in
// years and months. Never negative.
func OwnershipDuration(purchase, now time.Time) string {
	months := (now.Year()-purchase.Year())*12 + int(now.Month()) - int(purchase.Month())
	if now.Day() < purchase.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}

	if months == 0 {
		days := int(now.Sub(purchase).Hours() / 24)
		if days < 0 {
			days = 0
		}
		return fmt.Sprintf("%d days", days)
	}
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	return fmt.Sprintf("%d yrs %d mos", months/12, months%12)
}

type cpwEntry struct {
	name     string
	price    float64
	wears    int
	cpw      CPW
	duration string
}

// CostPerWear prints the CPW table for one dimension value: finite CPW
// ascending, never-worn items last, ties broken by price. No chart for this
// report.
func CostPerWear(w io.Writer, valueName string, rows []database.CostPerWearRow, now time.Time) {
	entries := make([]cpwEntry, 0, len(rows))
	for _, row := range rows {
		price := 0.0
		if row.Price != nil {
			price = *row.Price
		}

		duration := "N/A"
		if row.PurchaseDate != nil {
			duration = OwnershipDuration(*row.PurchaseDate, now)
		}

		entries = append(entries, cpwEntry{
			name:     row.ItemName,
			price:    price,
			wears:    row.WearCount,
			cpw:      ComputeCPW(price, row.WearCount),
			duration: duration,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].cpw.Compare(entries[j].cpw); c != 0 {
			return c < 0
		}
		return entries[i].price < entries[j].price
	})

	fmt.Fprintf(w, "\nCost Per Wear (CPW) for %s:\n", valueName)
	fmt.Fprintf(w, "%-20s | %-10s | %-6s | %-10s | %-18s\n", "Item", "Price", "Wears", "CPW", "Duration")
	fmt.Fprintln(w, strings.Repeat("-", 75))

	for _, e := range entries {
		fmt.Fprintf(w, "%-20s | $%-9.2f | %-6d | %-10s | %-18s\n",
			cell(e.name, 20), e.price, e.wears, e.cpw.String(), e.duration)
	}
}
