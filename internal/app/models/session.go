package models

// Session is the gateway-owned login record stored in redis. PlatformToken
// is the upstream bearer token; it never leaves the gateway. A session with
// an empty PlatformToken belongs to the break-glass root account and calls
// the platform with the service key instead.
type Session struct {
	SessionID      string `json:"session_id"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	PlatformToken  string `json:"platform_token,omitempty"`
	LoggedInAt     string `json:"logged_in_at"`
}
