package dto

// SetRegistrationLinkRequest sets or replaces the active registration link.
type SetRegistrationLinkRequest struct {
	Link  string `json:"link" binding:"required,url"`
	Title string `json:"title"`
}

// PublicRegistrationLinkResponse is the public view of the active link.
// Available is false when no active link is configured.
type PublicRegistrationLinkResponse struct {
	Available bool   `json:"available"`
	Link      string `json:"link,omitempty"`
	Title     string `json:"title,omitempty"`
}
