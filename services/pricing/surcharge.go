package pricing

import (
	"fmt"
	"time"

	"fixflow/models"
)

// Night band boundaries: work touching [22:00, 06:00) is nighttime work.
const (
	nightStartHour = 22
	nightEndHour   = 6
)

// InjectSurcharges inserts the nighttime and holiday surcharge items into
// items (with quantity 0) when the window starting at start and lasting
// durationMinutes triggers them. exceptions override the weekend-based
// holiday inference for exact dates.
func InjectSurcharges(items map[int]int, start time.Time, durationMinutes int, exceptions []models.CalendarException, catalog []models.WorkItem) error {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	if isNightWindow(start, end) {
		id, err := surchargeID(catalog, models.NighttimeWorkName)
		if err != nil {
			return err
		}
		items[id] = 0
	}
	if isHolidayWindow(start, end, exceptions) {
		id, err := surchargeID(catalog, models.HolidayWorkName)
		if err != nil {
			return err
		}
		items[id] = 0
	}
	return nil
}

func isNightWindow(start, end time.Time) bool {
	if start.Hour() >= nightStartHour || start.Hour() < nightEndHour {
		return true
	}
	if end.Hour() > nightStartHour || end.Hour() <= nightEndHour {
		return true
	}
	// Crossing midnight necessarily passes through the night band.
	return start.Day() != end.Day()
}

// isHolidayWindow flags the window when its start or end date is a
// holiday. Each date defaults to the weekend rule and an exact-date
// calendar exception overrides that date's flag independently.
func isHolidayWindow(start, end time.Time, exceptions []models.CalendarException) bool {
	holidayStart := isWeekend(start.Weekday())
	holidayEnd := isWeekend(end.Weekday())

	if ex := findException(exceptions, start); ex != nil {
		holidayStart = ex.IsHoliday
	}
	if ex := findException(exceptions, end); ex != nil {
		holidayEnd = ex.IsHoliday
	}
	return holidayStart || holidayEnd
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func findException(exceptions []models.CalendarException, t time.Time) *models.CalendarException {
	for i := range exceptions {
		if sameDate(exceptions[i].Date, t) {
			return &exceptions[i]
		}
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func surchargeID(catalog []models.WorkItem, name string) (int, error) {
	for _, item := range catalog {
		if item.Name == name {
			return item.ID, nil
		}
	}
	return 0, &QuoteError{Code: CodeCatalog, Message: fmt.Sprintf("catalog has no %q item", name)}
}
