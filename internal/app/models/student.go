package models

import "time"

// Student statuses. Soft status gates visibility; records are never purged by
// status transitions.
const (
	StudentStatusActive    = "active"
	StudentStatusPending   = "pending"
	StudentStatusCompleted = "completed"
)

// Student represents an enrolled student record.
type Student struct {
	ID             int64      `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	StudentID      string     `json:"studentId"`
	Course         string     `json:"course"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address,omitempty"`
	DateOfBirth    *string    `json:"dateOfBirth,omitempty"`
	EnrollmentDate time.Time  `json:"enrollmentDate"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	CreatedBy      int64      `json:"createdBy"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy      *int64     `json:"updatedBy,omitempty"`
}

// StudentPatch carries the updatable fields of a student. Identifier and
// creation metadata are deliberately absent; a patch can never touch them.
type StudentPatch struct {
	FullName       *string    `json:"fullName,omitempty"`
	Email          *string    `json:"email,omitempty"`
	StudentID      *string    `json:"studentId,omitempty"`
	Course         *string    `json:"course,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Address        *string    `json:"address,omitempty"`
	DateOfBirth    *string    `json:"dateOfBirth,omitempty"`
	EnrollmentDate *time.Time `json:"enrollmentDate,omitempty"`
	Status         *string    `json:"status,omitempty"`
}
