package models

import "time"

// Admin represents an administrator account. The admin identity is the unit
// of authorization; mutating operations stamp the acting admin's id.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the resolved acting principal attached to a request after
// token validation.
type Identity struct {
	AdminID  int64
	Username string
}
