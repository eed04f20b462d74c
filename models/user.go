package models

import "time"

// Account roles. Guests (no account) may still place orders.
const (
	RoleUser          = "User"
	RoleManager       = "Manager"
	RoleSupport       = "Support"
	RoleAdministrator = "Administrator"
)

// User is a registered account: a customer, a manager of employees, a
// support agent or an administrator.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
