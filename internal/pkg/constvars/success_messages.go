package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	ProfileGetSuccess = "get profile successfully"

	// Workflow
	GetWorkflowTasksSuccess = "get workflow tasks successfully"
	TaskApprovedSuccess     = "task approved successfully"
	TaskRejectedSuccess     = "task rejected successfully"

	// Organizations
	GetOrganizationsSuccess         = "get organizations successfully"
	OrganizationCreatedSuccess      = "organization created successfully"
	OrganizationStatusUpdateSuccess = "organization status updated successfully"
	OrganizationDeletedSuccess      = "organization deleted successfully"
	GetOverviewSuccess              = "get overview successfully"

	// Users
	GetUsersSuccess    = "get users successfully"
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"

	// Medicines
	GetMedicinesSuccess     = "get medicines successfully"
	MedicineCreatedSuccess  = "medicine created successfully"
	MedicineUpdatedSuccess  = "medicine updated successfully"
	MedicineDeletedSuccess  = "medicine deleted successfully"
	ReorderSubmittedSuccess = "reorder request submitted successfully"

	// Lab
	GetLabOrdersSuccess       = "get lab orders successfully"
	GetLabOrderSuccess        = "get lab order successfully"
	LabOrderStatusUpdate      = "lab order status updated successfully"
	LabResultsRecordedSuccess = "lab results recorded successfully"

	// Patients
	GetPatientsSuccess      = "get patients successfully"
	GetPatientSuccess       = "get patient successfully"
	GetPrescriptionsSuccess = "get prescriptions successfully"

	// Dashboard & audit
	GetDashboardSuccess   = "get dashboard successfully"
	GetAuditEventsSuccess = "get audit events successfully"
)
