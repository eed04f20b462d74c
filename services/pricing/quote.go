package pricing

import (
	"fmt"
	"time"

	"fixflow/models"
)

const (
	// MaxJobMinutes caps a single job at one full 8-hour shift.
	MaxJobMinutes = 480
	// BookingHorizonDays limits how far ahead work may be scheduled.
	BookingHorizonDays = 7
)

// Quote is the priced result for an order draft. Items is an augmented
// copy of the draft's content with any injected surcharge entries; the
// draft itself is never mutated.
type Quote struct {
	DurationMinutes int
	Cost            float64
	Items           map[int]int
}

// CompleteQuote runs the full pricing pipeline for a draft: shape
// validation, duration, job cap, booking horizon, surcharge injection and
// cost. catalog and exceptions are snapshots supplied by the caller;
// exceptions must cover dates on or after the draft's start date. now
// anchors the booking horizon.
func CompleteQuote(draft *models.OrderDraft, catalog []models.WorkItem, exceptions []models.CalendarException, now time.Time) (*Quote, error) {
	if err := draft.Validate(); err != nil {
		return nil, &QuoteError{Code: CodeInvalidDraft, Message: err.Error()}
	}

	minutes, err := Duration(draft.Items, catalog)
	if err != nil {
		return nil, err
	}
	if minutes > MaxJobMinutes {
		return nil, &QuoteError{Code: CodeJobTooLong, Message: fmt.Sprintf("estimated %d minutes exceeds the %d-minute cap", minutes, MaxJobMinutes)}
	}

	horizon := truncateToDay(now).AddDate(0, 0, BookingHorizonDays)
	if !truncateToDay(draft.StartTime).Before(horizon) {
		return nil, &QuoteError{Code: CodeOutsideHorizon, Message: fmt.Sprintf("bookings are accepted at most %d days ahead", BookingHorizonDays)}
	}

	items := make(map[int]int, len(draft.Items)+2)
	for id, qty := range draft.Items {
		items[id] = qty
	}
	if err := InjectSurcharges(items, draft.StartTime, minutes, exceptions, catalog); err != nil {
		return nil, err
	}

	cost, err := Cost(items, catalog)
	if err != nil {
		return nil, err
	}

	return &Quote{DurationMinutes: minutes, Cost: cost, Items: items}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
