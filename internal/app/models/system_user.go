package models

// SystemUser is an organization-scoped platform user.
type SystemUser struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name,omitempty"`
	Status           string `json:"status"`
	LastLoginAt      string `json:"last_login_at,omitempty"`
	CreatedAt        string `json:"created_at"`
}
