package models

import "time"

// Shift is a fixed interval during which an employee can be assigned work.
type Shift struct {
	ID         string    `bson:"id" json:"id"`
	EmployeeID string    `bson:"employee_id" json:"employee_id"`
	Start      time.Time `bson:"start" json:"start"`
	End        time.Time `bson:"end" json:"end"`
}

// Employee is a schedulable field worker. Shifts and ActiveOrders are the
// two independent schedule sources the availability engine reconciles; a
// roster snapshot carries both.
type Employee struct {
	ID           string  `bson:"id" json:"id"`
	ManagerID    string  `bson:"manager_id" json:"manager_id"`
	Shifts       []Shift `bson:"shifts,omitempty" json:"shifts,omitempty"`
	ActiveOrders []Order `bson:"active_orders,omitempty" json:"active_orders,omitempty"`
}
