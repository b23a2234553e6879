package dto

import "github.com/edunova/backend/internal/app/models"

// CreateTimetableEntryRequest represents a new timetable slot.
type CreateTimetableEntryRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Grade     string `json:"grade" binding:"required"`
	Room      string `json:"room"`
}

// TimetableResponse represents the full timetable listing.
type TimetableResponse struct {
	Entries []models.TimetableEntry `json:"entries"`
}
