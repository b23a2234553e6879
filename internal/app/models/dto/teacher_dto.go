package dto

import "github.com/edunova/backend/internal/app/models"

// CreateTeacherRequest represents a new teacher record.
type CreateTeacherRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Contact string `json:"contact" binding:"required"`
	Status  string `json:"status"`
}

// TeacherListResponse represents a paginated teacher listing.
type TeacherListResponse struct {
	Teachers   []models.Teacher `json:"teachers"`
	Pagination PaginationInfo   `json:"pagination"`
}

// TeacherListQuery captures the supported list filters.
type TeacherListQuery struct {
	Search  string `form:"search"`
	Subject string `form:"subject"`
	Status  string `form:"status"`
}
