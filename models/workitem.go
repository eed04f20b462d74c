package models

// WorkItem is a catalog entry for a billable unit of work or a surcharge.
// A zero Cost or Coefficient means the item does not carry one.
type WorkItem struct {
	ID              int     `bson:"id" json:"id"`
	Category        string  `bson:"category" json:"category"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Cost            float64 `bson:"cost" json:"cost"`
	Coefficient     float64 `bson:"coefficient" json:"coefficient"`
	Choosable       bool    `bson:"choosable" json:"choosable"`       // may appear in a customer request
	Enumerable      bool    `bson:"enumerable" json:"enumerable"`     // billed per quantity; surcharges are not
}

// Canonical names of the two surcharge items the pricing engine injects.
const (
	NighttimeWorkName = "Nighttime work"
	HolidayWorkName   = "Weekend and holiday work"
)
