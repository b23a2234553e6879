package models

import "time"

// TimetableEntry represents a single slot in the weekly class timetable.
type TimetableEntry struct {
	ID        int64      `json:"id"`
	Day       string     `json:"day"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Subject   string     `json:"subject"`
	Grade     string     `json:"grade"`
	Room      string     `json:"room,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy int64      `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy *int64     `json:"updatedBy,omitempty"`
}

// TimetableEntryPatch carries the updatable fields of a timetable entry.
type TimetableEntryPatch struct {
	Day       *string `json:"day,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	Room      *string `json:"room,omitempty"`
}
