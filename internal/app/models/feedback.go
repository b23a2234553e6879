package models

import "time"

// Feedback statuses. Only reviewed feedback is visible on the public site.
const (
	FeedbackStatusPending  = "pending"
	FeedbackStatusReviewed = "reviewed"
	FeedbackStatusResolved = "resolved"
	FeedbackStatusArchived = "archived"
)

// ValidFeedbackStatus reports whether s is a known feedback status.
func ValidFeedbackStatus(s string) bool {
	switch s {
	case FeedbackStatusPending, FeedbackStatusReviewed, FeedbackStatusResolved, FeedbackStatusArchived:
		return true
	}
	return false
}

// Feedback represents a visitor-submitted feedback entry.
type Feedback struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Message   string     `json:"message"`
	Rating    *int       `json:"rating,omitempty"` // 1..5 when present
	Type      string     `json:"type,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy *int64     `json:"updatedBy,omitempty"`
}

// FeedbackStats is a derived view over current feedback state, recomputed on
// every read.
type FeedbackStats struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"byStatus"`
	AverageRating float64          `json:"averageRating"`
}
