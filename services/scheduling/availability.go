package scheduling

import (
	"time"

	"fixflow/models"
)

// JobBuffer is the mandatory travel/cleanup padding applied after every
// job when checking order conflicts.
const JobBuffer = time.Hour

// IsEmployeeFree reports whether the employee can take a job in
// [start, end): some shift must fully contain the window, and no active
// order (buffered by JobBuffer) may intersect the buffer-extended window.
func IsEmployeeFree(start, end time.Time, emp models.Employee) bool {
	covered := false
	for _, s := range emp.Shifts {
		if !s.Start.After(start) && !s.End.Before(end) {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}

	extEnd := end.Add(JobBuffer)
	for _, o := range emp.ActiveOrders {
		oEnd := o.StartTime.Add(time.Duration(o.DurationMinutes)*time.Minute + JobBuffer)
		if oEnd.After(start) && o.StartTime.Before(extEnd) {
			return false
		}
	}
	return true
}

// HourlyAvailability maps every hour of the given date to whether any
// employee on the roster is free for a job of durationMinutes starting at
// that hour. The result always holds all 24 hours.
func HourlyAvailability(date time.Time, durationMinutes int, roster []models.Employee) map[int]bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	result := make(map[int]bool, 24)
	for hour := 0; hour < 24; hour++ {
		start := day.Add(time.Duration(hour) * time.Hour)
		end := start.Add(time.Duration(durationMinutes) * time.Minute)
		result[hour] = anyEmployeeFree(start, end, roster)
	}
	return result
}

func anyEmployeeFree(start, end time.Time, roster []models.Employee) bool {
	for _, emp := range roster {
		if IsEmployeeFree(start, end, emp) {
			return true
		}
	}
	return false
}
