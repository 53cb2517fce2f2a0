package responses

import "medicore-admin-service/internal/app/models"

// Dashboard is the landing panel: every figure is computed from the
// respective cached list or the audit collection, never stored.
type Dashboard struct {
	WorkflowCounts      WorkflowCounts      `json:"workflow_counts"`
	OrganizationsStatus map[string]int      `json:"organizations_by_status"`
	LowStockCount       int                 `json:"low_stock_count"`
	OutOfStockCount     int                 `json:"out_of_stock_count"`
	LabOrdersInProgress int                 `json:"lab_orders_in_progress"`
	RecentAuditEvents   []models.AuditEvent `json:"recent_audit_events"`
}
