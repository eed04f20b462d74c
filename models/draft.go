package models

import (
	"errors"
	"time"
)

// OrderDraft is an incoming booking request before pricing and assignment.
// Items maps catalog item ID to requested quantity: positive for
// enumerable items, zero for non-enumerable ones.
type OrderDraft struct {
	UserID        string      `json:"user_id,omitempty"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Address       string      `json:"address"`
	Commentary    string      `json:"commentary,omitempty"`
	StartTime     time.Time   `json:"start_time"`
	Items         map[int]int `json:"items"`
}

// Validate checks the basic request shape before any pricing work.
func (d *OrderDraft) Validate() error {
	if d.CustomerName == "" || d.CustomerEmail == "" || d.Address == "" {
		return errors.New("customer name, email and address are required")
	}
	if d.StartTime.IsZero() {
		return errors.New("start time is required")
	}
	if len(d.Items) == 0 {
		return errors.New("order content is empty")
	}
	return nil
}
