package dto

import "github.com/edunova/backend/internal/app/models"

// CreateStudentRequest represents a new student record.
type CreateStudentRequest struct {
	FullName       string  `json:"fullName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	StudentID      string  `json:"studentId" binding:"required"`
	Course         string  `json:"course" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Address        string  `json:"address"`
	DateOfBirth    *string `json:"dateOfBirth"`
	EnrollmentDate *string `json:"enrollmentDate"`
	Status         string  `json:"status"`
}

// StudentListResponse represents a paginated student listing.
type StudentListResponse struct {
	Students   []models.Student `json:"students"`
	Pagination PaginationInfo   `json:"pagination"`
}

// StudentListQuery captures the supported list filters.
type StudentListQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
}
