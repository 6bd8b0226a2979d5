package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"wardrobe/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCPW(t *testing.T) {
	assert.Equal(t, CPW{Value: 5.0}, ComputeCPW(20.0, 4))
	assert.Equal(t, CPW{Unbounded: true}, ComputeCPW(20.0, 0))
	assert.Equal(t, CPW{Value: 0.0}, ComputeCPW(0.0, 3))
}

func TestCPWCompare(t *testing.T) {
	finite := CPW{Value: 2.5}
	bigger := CPW{Value: 7.0}
	unbounded := CPW{Unbounded: true}

	assert.Negative(t, finite.Compare(bigger))
	assert.Positive(t, bigger.Compare(finite))
	assert.Zero(t, finite.Compare(finite))

	assert.Negative(t, bigger.Compare(unbounded))
	assert.Positive(t, unbounded.Compare(finite))
	assert.Zero(t, unbounded.Compare(unbounded))
}

func TestCPWString(t *testing.T) {
	assert.Equal(t, "$3.33", CPW{Value: 3.333}.String())
	assert.Equal(t, "No wears", CPW{Unbounded: true}.String())
}

func TestOwnershipDuration(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		purchase time.Time
		want     string
	}{
		{"days", time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), "3 days"},
		{"forty days is one month", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), "1 months"},
		{"eleven months", time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), "11 months"},
		{"thirteen months", time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), "1 yrs 1 mos"},
		{"day of month not reached", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), "26 days"},
		{"future purchase clamps", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "0 days"},
		{"same day", now, "0 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnershipDuration(tt.purchase, now))
		})
	}
}

func TestCostPerWearOrdering(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	priceA, priceB, priceC := 100.0, 40.0, 30.0
	rows := []database.CostPerWearRow{
		{ItemName: "A", Price: &priceA, WearCount: 2, PurchaseDate: &date},
		{ItemName: "B", Price: &priceB, WearCount: 0, PurchaseDate: &date},
		{ItemName: "C", Price: &priceC, WearCount: 3, PurchaseDate: &date},
	}

	var buf bytes.Buffer
	CostPerWear(&buf, "Tops", rows, now)
	out := buf.String()

	// C at $10/wear, then A at $50/wear, never-worn B last
	posC := strings.Index(out, "C ")
	posA := strings.Index(out, "A ")
	posB := strings.Index(out, "B ")
	require.True(t, posC >= 0 && posA >= 0 && posB >= 0, "all items present:\n%s", out)
	assert.Less(t, posC, posA)
	assert.Less(t, posA, posB)

	assert.Contains(t, out, "Cost Per Wear (CPW) for Tops:")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "$50.00")
	assert.Contains(t, out, "No wears")
}

func TestCostPerWearTieBrokenByPrice(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cheap, dear := 10.0, 20.0
	rows := []database.CostPerWearRow{
		{ItemName: "Dear", Price: &dear, WearCount: 2},
		{ItemName: "Cheap", Price: &cheap, WearCount: 1},
	}

	var buf bytes.Buffer
	CostPerWear(&buf, "Black", rows, now)
	out := buf.String()

	// Both at $10/wear, cheaper item first
	assert.Less(t, strings.Index(out, "Cheap"), strings.Index(out, "Dear"))
}

func TestCostPerWearNilPriceAndDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := []database.CostPerWearRow{
		{ItemName: "Gift", WearCount: 5},
	}

	var buf bytes.Buffer
	CostPerWear(&buf, "Acme", rows, now)
	out := buf.String()

	// Nil price counts as zero, nil date renders N/A
	assert.Contains(t, out, "$0.00")
	assert.Contains(t, out, "N/A")
}
