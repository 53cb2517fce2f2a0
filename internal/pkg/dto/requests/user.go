package requests

type ListSystemUsers struct {
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	Search         string `json:"search"`
}

type CreateSystemUser struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required,oneof=admin doctor nurse pharmacist lab_tech receptionist"`
	OrganizationID string `json:"organization_id" validate:"required"`
}

// PatchSystemUser changes role and/or status; both are optional but at
// least one must be present, which the usecase checks because the binding
// tags cannot express it.
type PatchSystemUser struct {
	UserID string `json:"-"`
	Role   string `json:"role" validate:"omitempty,oneof=admin doctor nurse pharmacist lab_tech receptionist"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}
