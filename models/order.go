package models

import "time"

// OrderItem is one catalog line of an order. Quantity is 0 for
// non-enumerable (surcharge) items by convention.
type OrderItem struct {
	WorkItemID int `bson:"work_item_id" json:"work_item_id"`
	Quantity   int `bson:"quantity" json:"quantity"`
}

// Order is a committed job assigned to an employee.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"user_id,omitempty" json:"user_id,omitempty"` // empty for guest orders
	EmployeeID      string      `bson:"employee_id" json:"employee_id"`
	CustomerName    string      `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string      `bson:"customer_email" json:"customer_email"`
	Address         string      `bson:"address" json:"address"`
	Commentary      string      `bson:"commentary,omitempty" json:"commentary,omitempty"`
	StartTime       time.Time   `bson:"start_time" json:"start_time"`
	DurationMinutes int         `bson:"duration_minutes" json:"duration_minutes"`
	Cost            float64     `bson:"cost" json:"cost"`
	Content         []OrderItem `bson:"content" json:"content"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}

// OrderHistory is the archived record of a closed or cancelled order.
type OrderHistory struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	EmployeeID string    `bson:"employee_id" json:"employee_id"`
	StartTime  time.Time `bson:"start_time" json:"start_time"`
	Info       string    `bson:"info" json:"info"`
	ClosedAt   time.Time `bson:"closed_at" json:"closed_at"`
}
