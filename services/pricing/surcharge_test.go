package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
)

const (
	nighttimeID = 7
	holidayID   = 8
)

func injected(t *testing.T, start time.Time, minutes int, exceptions []models.CalendarException) map[int]int {
	t.Helper()
	items := map[int]int{2: 1}
	require.NoError(t, InjectSurcharges(items, start, minutes, exceptions, testCatalog))
	return items
}

func TestInjectSurcharges_Nighttime(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		start   time.Time
		minutes int
		night   bool
	}{
		{"midday work", day.Add(10 * time.Hour), 60, false},
		{"starts at 22:00", day.Add(22 * time.Hour), 45, true},
		{"starts at 05:00", day.Add(5 * time.Hour), 30, true},
		{"ends at 23:00", day.Add(21 * time.Hour), 120, true},
		{"ends at 06:00", day.Add(5*time.Hour + 30*time.Minute), 30, true},
		{"crosses midnight", day.Add(23 * time.Hour), 120, true},
		{"ends at 22:00 sharp", day.Add(21 * time.Hour), 60, false},
		{"starts at 06:00 sharp", day.Add(6 * time.Hour), 60, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := injected(t, tc.start, tc.minutes, nil)
			_, hasNight := items[nighttimeID]
			assert.Equal(t, tc.night, hasNight)
		})
	}
}

func TestInjectSurcharges_WeekendRule(t *testing.T) {
	saturday := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	friday := time.Date(2026, time.March, 6, 10, 0, 0, 0, time.UTC)

	items := injected(t, saturday, 60, nil)
	assert.Contains(t, items, holidayID, "Saturday work carries the holiday surcharge")
	assert.Zero(t, items[holidayID], "surcharges are injected with quantity zero")

	items = injected(t, friday, 60, nil)
	assert.NotContains(t, items, holidayID)

	// Friday 23:30 plus an hour spills into Saturday.
	items = injected(t, friday.Add(13*time.Hour+30*time.Minute), 60, nil)
	assert.Contains(t, items, holidayID, "the end date alone makes it holiday work")
	assert.Contains(t, items, nighttimeID)
}

func TestInjectSurcharges_CalendarExceptions(t *testing.T) {
	saturday := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	workingSaturday := []models.CalendarException{{Date: truncateToDay(saturday), IsHoliday: false}}
	items := injected(t, saturday, 60, workingSaturday)
	assert.NotContains(t, items, holidayID, "exception downgrades the weekend")

	midweekHoliday := []models.CalendarException{{Date: truncateToDay(wednesday), IsHoliday: true}}
	items = injected(t, wednesday, 60, midweekHoliday)
	assert.Contains(t, items, holidayID, "exception upgrades a weekday")
}

func TestInjectSurcharges_ExceptionsApplyPerDate(t *testing.T) {
	// Friday 23:00 plus two hours ends Saturday 01:00.
	friday := time.Date(2026, time.March, 6, 23, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	items := injected(t, friday, 120, nil)
	assert.Contains(t, items, holidayID)

	// Downgrading only the Saturday clears the flag: Friday stays a workday.
	workingSaturday := []models.CalendarException{{Date: saturday, IsHoliday: false}}
	items = injected(t, friday, 120, workingSaturday)
	assert.NotContains(t, items, holidayID)

	// Upgrading only the Friday is enough on its own.
	fridayHoliday := []models.CalendarException{
		{Date: truncateToDay(friday), IsHoliday: true},
		{Date: saturday, IsHoliday: false},
	}
	items = injected(t, friday, 120, fridayHoliday)
	assert.Contains(t, items, holidayID)
}

func TestInjectSurcharges_MissingCatalogEntry(t *testing.T) {
	bare := []models.WorkItem{
		{ID: 2, Name: "Leak repair", DurationMinutes: 45, Cost: 650, Choosable: true, Enumerable: true},
	}
	night := time.Date(2026, time.March, 4, 23, 0, 0, 0, time.UTC)

	err := InjectSurcharges(map[int]int{2: 1}, night, 45, nil, bare)
	assert.Equal(t, CodeCatalog, quoteCode(t, err))
}
