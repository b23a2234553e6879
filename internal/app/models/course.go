package models

import "time"

// Course statuses.
const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)

// Course represents an offered course. Code is the natural key.
type Course struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
	Duration    string     `json:"duration"`
	Fee         float64    `json:"fee"`
	Capacity    int        `json:"capacity"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   int64      `json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   *int64     `json:"updatedBy,omitempty"`
}

// CoursePatch carries the updatable fields of a course.
type CoursePatch struct {
	Name        *string  `json:"name,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Fee         *float64 `json:"fee,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Status      *string  `json:"status,omitempty"`
}
