package models

import "time"

// AppSettings is the singleton site configuration record.
type AppSettings struct {
	ID                  int64      `json:"id"`
	SiteName            string     `json:"siteName"`
	LogoURL             string     `json:"logoUrl,omitempty"`
	ContactEmail        string     `json:"contactEmail,omitempty"`
	EnableRegistrations bool       `json:"enableRegistrations"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy           *int64     `json:"updatedBy,omitempty"`
}

// AppSettingsPatch carries the updatable settings fields.
type AppSettingsPatch struct {
	SiteName            *string `json:"siteName,omitempty"`
	LogoURL             *string `json:"logoUrl,omitempty"`
	ContactEmail        *string `json:"contactEmail,omitempty"`
	EnableRegistrations *bool   `json:"enableRegistrations,omitempty"`
}
