package scheduling

import "fmt"

// Error codes returned by the scheduling engine.
const (
	CodeShiftDuration = "invalidShiftDuration"
	CodeShiftOverlap  = "shiftOverlap"
	CodeNoEmployee    = "noEmployeeAvailable"
)

// ScheduleError is a validation failure from the scheduling engine. Every
// failure is a rejected request, never a crash.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNoEmployeeAvailable is returned by ChooseEmployee when no employee on
// the roster is free for the requested window.
var ErrNoEmployeeAvailable = &ScheduleError{
	Code:    CodeNoEmployee,
	Message: "no employee is free for the requested window",
}
