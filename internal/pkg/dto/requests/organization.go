package requests

type ListOrganizations struct {
	Status string `json:"status"`
	Plan   string `json:"plan"`
	Search string `json:"search"`
}

type CreateOrganization struct {
	Name         string `json:"name" validate:"required,min=3,max=120"`
	Slug         string `json:"slug" validate:"required,slug,max=60"`
	Type         string `json:"type" validate:"required,oneof=clinic hospital health_center"`
	Plan         string `json:"plan" validate:"required,oneof=free standard enterprise"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

type UpdateOrganizationStatus struct {
	OrganizationID string `json:"-"`
	Status         string `json:"status" validate:"required,oneof=active suspended"`
}
