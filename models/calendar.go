package models

import "time"

// CalendarException overrides the weekend-based holiday inference for one
// specific date. Date is stored truncated to midnight UTC.
type CalendarException struct {
	Date      time.Time `bson:"date" json:"date"`
	IsHoliday bool      `bson:"is_holiday" json:"is_holiday"`
}
