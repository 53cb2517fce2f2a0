package responses

// OrganizationOverview is the superadmin panel's stat block, computed
// gateway-side from the cached organization list.
type OrganizationOverview struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPlan     map[string]int `json:"by_plan"`
	TotalUsers int            `json:"total_users"`
}
