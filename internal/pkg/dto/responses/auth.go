package responses

type Login struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type Profile struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	LoggedInAt     string `json:"logged_in_at"`
}
