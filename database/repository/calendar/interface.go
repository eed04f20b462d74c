package calendarRepo

import (
	"context"
	"time"

	"fixflow/models"
)

// CalendarRepository manages sparse per-date holiday overrides.
type CalendarRepository interface {
	Upsert(ctx context.Context, ex *models.CalendarException) error
	// ListOnOrAfter returns exceptions whose date is on or after the given
	// date, the slice the pricing engine consumes.
	ListOnOrAfter(ctx context.Context, date time.Time) ([]models.CalendarException, error)
	Delete(ctx context.Context, date time.Time) error
}
