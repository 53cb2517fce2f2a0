package models

// Patient is a demographic record mirrored from the platform.
type Patient struct {
	ID                  string   `json:"id"`
	MedicalRecordNumber string   `json:"medical_record_number"`
	Name                string   `json:"name"`
	Gender              string   `json:"gender,omitempty"`
	BirthDate           string   `json:"birth_date,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Email               string   `json:"email,omitempty"`
	Address             string   `json:"address,omitempty"`
	BloodType           string   `json:"blood_type,omitempty"`
	Allergies           []string `json:"allergies,omitempty"`
	OrganizationID      string   `json:"organization_id"`
	RegisteredAt        string   `json:"registered_at"`
}
