package dto

import "github.com/edunova/backend/internal/app/models"

// SubmitFeedbackRequest is the public feedback submission payload.
type SubmitFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Type    string `json:"type"`
}

// UpdateFeedbackStatusRequest moves a feedback entry through its workflow.
type UpdateFeedbackStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FeedbackListResponse represents a paginated feedback listing.
type FeedbackListResponse struct {
	Feedbacks  []models.Feedback `json:"feedbacks"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FeedbackListQuery captures the supported admin list filters.
type FeedbackListQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
}
