package models

// Task is an approval-queue item mirrored from the platform. The gateway
// never owns its lifecycle; it displays what the platform returns.
type Task struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	RequesterName    string `json:"requester_name"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name,omitempty"`
	Priority         string `json:"priority"`
	Status           string `json:"status"`
	Note             string `json:"note,omitempty"`
	SubmittedAt      string `json:"submitted_at"`
	DecidedAt        string `json:"decided_at,omitempty"`
	DecidedBy        string `json:"decided_by,omitempty"`
}
