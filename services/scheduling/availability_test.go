package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
)

func employeeWithShift(id string, start time.Time, d time.Duration) models.Employee {
	return models.Employee{
		ID:     id,
		Shifts: []models.Shift{{ID: id + "-shift", EmployeeID: id, Start: start, End: start.Add(d)}},
	}
}

func orderAt(start time.Time, minutes int) models.Order {
	return models.Order{StartTime: start, DurationMinutes: minutes}
}

func TestIsEmployeeFree_ShiftContainment(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	emp := employeeWithShift("e1", day.Add(8*time.Hour), 8*time.Hour) // 08:00-16:00

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		free  bool
	}{
		{"fully inside shift", day.Add(10 * time.Hour), day.Add(11 * time.Hour), true},
		{"exactly the whole shift", day.Add(8 * time.Hour), day.Add(16 * time.Hour), true},
		{"starts before shift", day.Add(7 * time.Hour), day.Add(9 * time.Hour), false},
		{"ends after shift", day.Add(15 * time.Hour), day.Add(17 * time.Hour), false},
		{"entirely outside shift", day.Add(20 * time.Hour), day.Add(21 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.free, IsEmployeeFree(tc.start, tc.end, emp))
		})
	}
}

func TestIsEmployeeFree_OrderBuffer(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	emp := employeeWithShift("e1", day, 8*time.Hour) // 00:00-08:00
	// Booked 02:00-03:00, so with the buffer the employee is busy until 04:00.
	emp.ActiveOrders = []models.Order{orderAt(day.Add(2*time.Hour), 60)}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		free  bool
	}{
		{"overlaps the booking", day.Add(2*time.Hour + 30*time.Minute), day.Add(3 * time.Hour), false},
		{"inside the trailing buffer", day.Add(3 * time.Hour), day.Add(4 * time.Hour), false},
		{"starts when the buffer ends", day.Add(4 * time.Hour), day.Add(5 * time.Hour), true},
		{"own buffer reaches the booking", day.Add(30 * time.Minute), day.Add(time.Hour + 30*time.Minute), false},
		{"ends a full buffer before the booking", day, day.Add(time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.free, IsEmployeeFree(tc.start, tc.end, emp))
		})
	}
}

func TestHourlyAvailability_AlwaysHolds24Hours(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	hours := HourlyAvailability(day, 60, nil)
	require.Len(t, hours, 24)
	for h := 0; h < 24; h++ {
		free, ok := hours[h]
		require.True(t, ok, "hour %d missing from the map", h)
		assert.False(t, free, "empty roster must never be available")
	}
}

func TestHourlyAvailability_TwoEmployees(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	morning := employeeWithShift("e1", day.Add(8*time.Hour), 4*time.Hour)   // 08:00-12:00
	afternoon := employeeWithShift("e2", day.Add(12*time.Hour), 4*time.Hour) // 12:00-16:00
	// e2 already booked 13:00-14:00; the buffer blocks 14:00 starts too.
	afternoon.ActiveOrders = []models.Order{orderAt(day.Add(13*time.Hour), 60)}

	hours := HourlyAvailability(day, 60, []models.Employee{morning, afternoon})
	require.Len(t, hours, 24)

	wantFree := map[int]bool{8: true, 9: true, 10: true, 11: true, 12: false, 15: true}
	for h, want := range wantFree {
		assert.Equal(t, want, hours[h], "hour %d", h)
	}
	assert.False(t, hours[13], "booked hour must be unavailable")
	assert.False(t, hours[14], "buffered hour must be unavailable")
	assert.False(t, hours[7], "before any shift")
	assert.False(t, hours[16], "a job starting at shift end does not fit")
}

func TestHourlyAvailability_DurationMustFitShift(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	emp := employeeWithShift("e1", day.Add(9*time.Hour), 2*time.Hour) // 09:00-11:00

	hours := HourlyAvailability(day, 90, []models.Employee{emp})
	assert.True(t, hours[9], "09:00 start leaves room for 90 minutes")
	assert.False(t, hours[10], "10:00 start would run past the shift end")
}
