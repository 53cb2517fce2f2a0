package responses

import "medicore-admin-service/internal/app/models"

// WorkflowBoard is the three fixed status buckets the queue page renders.
// Order within a bucket is platform order; tasks with an unknown status are
// dropped.
type WorkflowBoard struct {
	Pending  []models.Task  `json:"pending"`
	Approved []models.Task  `json:"approved"`
	Rejected []models.Task  `json:"rejected"`
	Counts   WorkflowCounts `json:"counts"`
}

type WorkflowCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
