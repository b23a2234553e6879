package models

import (
	"strings"
	"time"
)

// CourseResource links study material to a subject/grade pair. The pair is
// the natural key; upserts by the normalized pair keep the id stable.
type CourseResource struct {
	ID           int64      `json:"id"`
	Subject      string     `json:"subject"`
	Grade        string     `json:"grade"`
	ResourceType string     `json:"resourceType"`
	Year         string     `json:"year"`
	Link         string     `json:"link"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    int64      `json:"createdBy"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    *int64     `json:"updatedBy,omitempty"`
}

// NormalizeResourceKey canonicalizes a subject/grade pair: subject is
// lower-cased and a literal "grade-" prefix is stripped from the grade, so
// "grade-6" and "6" address the same record.
func NormalizeResourceKey(subject, grade string) (string, string) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	grade = strings.TrimSpace(grade)
	grade = strings.TrimPrefix(grade, "grade-")
	return subject, grade
}
