package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
)

func shiftAt(id string, start time.Time, d time.Duration) models.Shift {
	return models.Shift{ID: id, EmployeeID: "emp-1", Start: start, End: start.Add(d)}
}

func TestValidateShift_DurationBounds(t *testing.T) {
	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration time.Duration
		wantCode string
	}{
		{"one hour is the minimum", time.Hour, ""},
		{"eight hours is the maximum", 8 * time.Hour, ""},
		{"below one hour rejected", 59 * time.Minute, CodeShiftDuration},
		{"above eight hours rejected", 8*time.Hour + time.Minute, CodeShiftDuration},
		{"zero duration rejected", 0, CodeShiftDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateShift(shiftAt("s1", base, tc.duration), nil)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var schedErr *ScheduleError
			require.ErrorAs(t, err, &schedErr)
			assert.Equal(t, tc.wantCode, schedErr.Code)
		})
	}
}

func TestValidateShift_Overlap(t *testing.T) {
	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	candidate := shiftAt("cand", base, 4*time.Hour) // 08:00-12:00

	cases := []struct {
		name     string
		existing models.Shift
		wantErr  bool
	}{
		{"existing starts inside candidate", shiftAt("e1", base.Add(2*time.Hour), 4*time.Hour), true},
		{"existing ends inside candidate", shiftAt("e2", base.Add(-2*time.Hour), 3*time.Hour), true},
		{"existing inside candidate", shiftAt("e3", base.Add(time.Hour), 2*time.Hour), true},
		{"identical interval", shiftAt("e4", base, 4*time.Hour), true},
		{"existing ends exactly at candidate start", shiftAt("e5", base.Add(-3*time.Hour), 3*time.Hour), false},
		{"existing starts exactly at candidate end", shiftAt("e6", base.Add(4*time.Hour), 2*time.Hour), false},
		{"existing well before", shiftAt("e7", base.Add(-8*time.Hour), 2*time.Hour), false},
		{"existing well after", shiftAt("e8", base.Add(10*time.Hour), 2*time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateShift(candidate, []models.Shift{tc.existing})
			if tc.wantErr {
				var schedErr *ScheduleError
				require.ErrorAs(t, err, &schedErr)
				assert.Equal(t, CodeShiftOverlap, schedErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateShift_ChecksAllExisting(t *testing.T) {
	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	existing := []models.Shift{
		shiftAt("e1", base.Add(-6*time.Hour), 2*time.Hour),
		shiftAt("e2", base.Add(3*time.Hour), 2*time.Hour), // overlaps
	}

	err := ValidateShift(shiftAt("cand", base, 4*time.Hour), existing)
	assert.Error(t, err)
}
