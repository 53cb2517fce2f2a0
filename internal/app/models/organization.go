package models

// Organization is a tenant (clinic, hospital, health center) mirrored from
// the platform.
type Organization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Type         string `json:"type"`
	Plan         string `json:"plan"`
	Status       string `json:"status"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Address      string `json:"address,omitempty"`
	UserCount    int    `json:"user_count"`
	CreatedAt    string `json:"created_at"`
}
