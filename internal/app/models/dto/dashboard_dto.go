package dto

import "github.com/edunova/backend/internal/app/models"

// DashboardStats is the derived dashboard view, recomputed per request.
type DashboardStats struct {
	TotalStudents        int64   `json:"totalStudents"`
	TotalCourses         int64   `json:"totalCourses"`
	TotalTeachers        int64   `json:"totalTeachers"`
	PendingRegistrations int64   `json:"pendingRegistrations"`
	RecentRegistrations  int64   `json:"recentRegistrations"`
	CompletionRate       float64 `json:"completionRate"`
	AverageRating        float64 `json:"averageRating"`
}

// DashboardActivity lists the most recent records for the activity feed.
type DashboardActivity struct {
	RecentStudents  []models.Student  `json:"recentStudents"`
	RecentFeedbacks []models.Feedback `json:"recentFeedbacks"`
}
