package models

import "time"

// Teacher statuses.
const (
	TeacherStatusActive   = "active"
	TeacherStatusInactive = "inactive"
)

// Teacher represents a teaching staff record. Email is the natural key.
type Teacher struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	Email     string     `json:"email"`
	Contact   string     `json:"contact"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy int64      `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy *int64     `json:"updatedBy,omitempty"`
}

// TeacherPatch carries the updatable fields of a teacher.
type TeacherPatch struct {
	Name    *string `json:"name,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Email   *string `json:"email,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Status  *string `json:"status,omitempty"`
}
