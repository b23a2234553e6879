package dto

import "github.com/edunova/backend/internal/app/models"

// CreateCourseRequest represents a new course.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	Duration    string  `json:"duration" binding:"required"`
	Fee         float64 `json:"fee" binding:"required"`
	Capacity    int     `json:"capacity"`
	Status      string  `json:"status"`
}

// CourseListResponse represents a course listing.
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
}
