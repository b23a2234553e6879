package models

import "time"

// RegistrationLink points prospective students at the current external
// registration form. At most one link is active at a time; replaced links are
// deactivated, never deleted.
type RegistrationLink struct {
	ID        int64      `json:"id"`
	Token     string     `json:"token"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy int64      `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy *int64     `json:"updatedBy,omitempty"`
}
