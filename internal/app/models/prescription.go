package models

type Prescription struct {
	ID         string             `json:"id"`
	PatientID  string             `json:"patient_id"`
	Prescriber string             `json:"prescriber"`
	IssuedAt   string             `json:"issued_at"`
	Status     string             `json:"status"`
	Items      []PrescriptionItem `json:"items"`
}

type PrescriptionItem struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}
