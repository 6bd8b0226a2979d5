package report

import (
	"fmt"
	"io"
	"time"

	"wardrobe/internal/chart"
	"wardrobe/internal/database"
)

// purchaseColumns is the line-item layout shared by the monthly and daily
// expense reports.
var purchaseColumns = []Column[database.PurchaseRow]{
	{Header: "Date", Width: 12, Value: func(r database.PurchaseRow) string {
		return r.PurchaseDate.Format("2006-01-02")
	}},
	{Header: "Item Name", Width: 20, Value: func(r database.PurchaseRow) string { return r.ItemName }},
	{Header: "Color", Width: 10, Value: func(r database.PurchaseRow) string { return r.ColorName }},
	{Header: "Brand", Width: 10, Value: func(r database.PurchaseRow) string { return r.BrandName }},
	{Header: "Price", Width: 10, Value: func(r database.PurchaseRow) string { return formatPrice(r.Price) }},
}

// MonthlyExpenses buckets a year's purchases by month. Every month appears
// in the chart series, zero included; line items are printed only for months
// with spend, numbering restarting per month. A nil price counts zero in the
// total but still lists as N/A.
func MonthlyExpenses(w io.Writer, year int, rows []database.PurchaseRow) *chart.Bar {
	var totals [12]float64
	var buckets [12][]database.PurchaseRow
	for _, row := range rows {
		m := int(row.PurchaseDate.Month()) - 1
		buckets[m] = append(buckets[m], row)
		if row.Price != nil {
			totals[m] += *row.Price
		}
	}

	fmt.Fprintf(w, "\nMonthly Expenses for %d:\n", year)
	for m := 0; m < 12; m++ {
		if totals[m] > 0 {
			fmt.Fprintf(w, "\n%s: Total $%.2f\n", time.Month(m+1), totals[m])
			Table(w, purchaseColumns, buckets[m])
		}
	}

	bar := &chart.Bar{
		Title:  fmt.Sprintf("Monthly Expenses - %d", year),
		XLabel: "Month",
		YLabel: "Amount ($)",
	}
	for m := 0; m < 12; m++ {
		bar.Labels = append(bar.Labels, time.Month(m+1).String())
		bar.Values = append(bar.Values, totals[m])
	}
	return bar
}

// DailyExpenses buckets one month's purchases by day. The chart series has
// one point per calendar day of that month and year.
func DailyExpenses(w io.Writer, year int, month time.Month, rows []database.PurchaseRow) *chart.Bar {
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	totals := make([]float64, days)
	buckets := make([][]database.PurchaseRow, days)
	for _, row := range rows {
		d := row.PurchaseDate.Day() - 1
		if d < 0 || d >= days {
			continue
		}
		buckets[d] = append(buckets[d], row)
		if row.Price != nil {
			totals[d] += *row.Price
		}
	}

	fmt.Fprintf(w, "\nDaily Expenses for %s %d:\n", month, year)
	hasData := false
	for d := 0; d < days; d++ {
		if totals[d] > 0 {
			hasData = true
			fmt.Fprintf(w, "\nDay %02d: Total $%.2f\n", d+1, totals[d])
			Table(w, purchaseColumns, buckets[d])
		}
	}
	if !hasData {
		fmt.Fprintln(w, "No expenses found for this month.")
	}

	bar := &chart.Bar{
		Title:  fmt.Sprintf("Daily Expenses - %s %d", month, year),
		XLabel: "Day",
		YLabel: "Amount ($)",
	}
	for d := 0; d < days; d++ {
		bar.Labels = append(bar.Labels, fmt.Sprintf("%02d", d+1))
		bar.Values = append(bar.Values, totals[d])
	}
	return bar
}
