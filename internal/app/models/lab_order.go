package models

// LabOrder is a requested diagnostic test mirrored from the platform.
type LabOrder struct {
	ID             string      `json:"id"`
	Code           string      `json:"code"`
	TestName       string      `json:"test_name"`
	Category       string      `json:"category"`
	PatientID      string      `json:"patient_id"`
	PatientName    string      `json:"patient_name"`
	OrderedBy      string      `json:"ordered_by"`
	OrganizationID string      `json:"organization_id"`
	Priority       string      `json:"priority"`
	Status         string      `json:"status"`
	Specimen       string      `json:"specimen,omitempty"`
	OrderedAt      string      `json:"ordered_at"`
	CompletedAt    string      `json:"completed_at,omitempty"`
	Results        []LabResult `json:"results,omitempty"`
}

// LabResult is one completed measurement on an order.
type LabResult struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	Parameter      string `json:"parameter"`
	Value          string `json:"value"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
	Flag           string `json:"flag"`
	RecordedBy     string `json:"recorded_by,omitempty"`
	RecordedAt     string `json:"recorded_at,omitempty"`
}
