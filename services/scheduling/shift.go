package scheduling

import (
	"fmt"
	"time"

	"fixflow/models"
)

// Shift duration bounds enforced on registration.
const (
	MinShiftDuration = time.Hour
	MaxShiftDuration = 8 * time.Hour
)

// ValidateShift decides whether a candidate shift may be registered
// alongside the employee's existing shifts. Shifts are half-open
// [start, end) intervals and must stay pairwise disjoint. Pure predicate;
// the caller persists the shift on acceptance.
func ValidateShift(candidate models.Shift, existing []models.Shift) error {
	d := candidate.End.Sub(candidate.Start)
	if d < MinShiftDuration || d > MaxShiftDuration {
		return &ScheduleError{
			Code:    CodeShiftDuration,
			Message: fmt.Sprintf("shift duration %s is outside [%s, %s]", d, MinShiftDuration, MaxShiftDuration),
		}
	}

	for _, s := range existing {
		// existing.start in [candidate.start, candidate.end)
		if !s.Start.Before(candidate.Start) && s.Start.Before(candidate.End) {
			return overlapError(s)
		}
		// existing.end in (candidate.start, candidate.end]
		if s.End.After(candidate.Start) && !s.End.After(candidate.End) {
			return overlapError(s)
		}
	}
	return nil
}

func overlapError(s models.Shift) error {
	return &ScheduleError{
		Code:    CodeShiftOverlap,
		Message: fmt.Sprintf("candidate overlaps existing shift %s", s.ID),
	}
}
