package models

// ContactRequest is the payload of the public contact endpoint.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	RequestType string `json:"requestType,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

// AddSectionRequest represents a request to append a new section to a page.
type AddSectionRequest struct {
	Type       string  `json:"type" binding:"required"`
	Background string  `json:"background,omitempty"`
	Settings   JSONMap `json:"settings,omitempty"`
}

// UpdateSectionRequest represents a request to update an existing section.
type UpdateSectionRequest struct {
	Type       *string  `json:"type,omitempty"`
	Background *string  `json:"background,omitempty"`
	Settings   *JSONMap `json:"settings,omitempty"`
}

// CreatePageRequest describes a page definition, used by the admin API and
// the embedded seed data.
type CreatePageRequest struct {
	Title       string    `json:"title" binding:"required"`
	Slug        string    `json:"slug" binding:"required"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	Published   *bool     `json:"published,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
}
