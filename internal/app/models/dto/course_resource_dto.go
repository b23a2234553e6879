package dto

import "github.com/edunova/backend/internal/app/models"

// UpsertCourseResourceRequest creates or replaces the resource for a
// subject/grade pair. The pair is normalized before lookup.
type UpsertCourseResourceRequest struct {
	Subject      string `json:"subject" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	ResourceType string `json:"resourceType" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Link         string `json:"link" binding:"required,url"`
}

// CourseResourceListResponse represents a resource listing.
type CourseResourceListResponse struct {
	Resources []models.CourseResource `json:"resources"`
}
