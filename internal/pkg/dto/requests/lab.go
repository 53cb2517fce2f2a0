package requests

type ListLabOrders struct {
	Status    string `json:"status"`
	Category  string `json:"category"`
	PatientID string `json:"patient_id"`
	Search    string `json:"search"`
}

// UpdateLabOrderStatus whitelists the transition target; the platform owns
// actual transition legality.
type UpdateLabOrderStatus struct {
	OrderID string `json:"-"`
	Status  string `json:"status" validate:"required,oneof=ordered specimen_collected in_progress completed cancelled"`
}

type RecordLabResults struct {
	OrderID string           `json:"-"`
	Entries []LabResultEntry `json:"entries" validate:"required,min=1,dive"`
}

type LabResultEntry struct {
	Parameter      string `json:"parameter" validate:"required"`
	Value          string `json:"value" validate:"required"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"reference_range"`
	Flag           string `json:"flag" validate:"required,oneof=normal low high critical"`
}
