package requests

// ListWorkflowTasks carries the client-side filter bar: three equality
// predicates plus a substring search. Empty string means "all".
type ListWorkflowTasks struct {
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	OrganizationID string `json:"organization_id"`
	Search         string `json:"search"`
}

type DecideTask struct {
	TaskID string `json:"-"`
	Note   string `json:"note"`
}
