package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
)

// testCatalog is a small price list exercising every item shape the
// engine distinguishes: enumerable, non-enumerable and surcharge items.
var testCatalog = []models.WorkItem{
	{ID: 1, Category: "General", Name: "Leak detection", DurationMinutes: 30, Cost: 300, Choosable: true, Enumerable: true},
	{ID: 2, Category: "General", Name: "Leak repair", DurationMinutes: 45, Cost: 650, Choosable: true, Enumerable: true},
	{ID: 4, Category: "Drain cleaning", Name: "Complex clog removal", DurationMinutes: 60, Cost: 1000, Choosable: true, Enumerable: true},
	{ID: 5, Category: "General", Name: "Inspection visit", DurationMinutes: 60, Cost: 800, Choosable: true},
	{ID: 7, Category: "Extra charges", Name: models.NighttimeWorkName, Coefficient: 0.1},
	{ID: 8, Category: "Extra charges", Name: models.HolidayWorkName, Coefficient: 0.15},
}

func quoteCode(t *testing.T, err error) string {
	t.Helper()
	var qErr *QuoteError
	require.ErrorAs(t, err, &qErr)
	return qErr.Code
}

func TestDuration_Totals(t *testing.T) {
	cases := []struct {
		name  string
		items map[int]int
		want  int
	}{
		{"single enumerable item", map[int]int{2: 1}, 45},
		{"quantity multiplies duration", map[int]int{1: 2}, 60},
		{"mixed items add up", map[int]int{1: 2, 2: 1}, 105},
		{"non-enumerable counts once", map[int]int{5: 0}, 60},
		{"non-enumerable next to enumerable", map[int]int{1: 1, 5: 0}, 90},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Duration(tc.items, testCatalog)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			again, err := Duration(tc.items, testCatalog)
			require.NoError(t, err)
			assert.Equal(t, got, again, "repeated estimation must agree")
		})
	}
}

func TestDuration_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		items    map[int]int
		wantCode string
	}{
		{"unknown item", map[int]int{99: 1}, CodeUnknownItem},
		{"surcharge requested directly", map[int]int{7: 0}, CodeNotChoosable},
		{"enumerable with zero quantity", map[int]int{1: 0}, CodeBadQuantity},
		{"enumerable with negative quantity", map[int]int{1: -2}, CodeBadQuantity},
		{"non-enumerable with positive quantity", map[int]int{5: 1}, CodeBadQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Duration(tc.items, testCatalog)
			assert.Equal(t, tc.wantCode, quoteCode(t, err))
		})
	}
}
