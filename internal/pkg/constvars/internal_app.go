package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "MDCR_ADM_"
)

const (
	MedicoreRoleSuperadmin   = "superadmin"
	MedicoreRoleAdmin        = "admin"
	MedicoreRoleDoctor       = "doctor"
	MedicoreRoleNurse        = "nurse"
	MedicoreRolePharmacist   = "pharmacist"
	MedicoreRoleLabTech      = "lab_tech"
	MedicoreRoleReceptionist = "receptionist"
)

const (
	ResourceAuth          = "auth"
	ResourceTasks         = "tasks"
	ResourceOrganizations = "organizations"
	ResourceUsers         = "users"
	ResourceMedicines     = "medicines"
	ResourceLabOrders     = "lab-orders"
	ResourcePatients      = "patients"
	ResourceAuditEvents   = "audit-events"
)

// Cache groups: one invalidation unit per mirrored resource.
const (
	CacheGroupWorkflow      = "workflow"
	CacheGroupOrganizations = "organizations"
	CacheGroupUsers         = "users"
	CacheGroupMedicines     = "medicines"
	CacheGroupLabOrders     = "lab_orders"
	CacheGroupPatients      = "patients"
)

const (
	CacheKeyPrefix      = "cache:"
	CacheGroupKeyPrefix = "cachegroup:"
	SessionKeyPrefix    = "session:"
	LockKeyTaskDecision = "lock:workflow:task:"
)

const (
	TaskStatusPending  = "pending"
	TaskStatusApproved = "approved"
	TaskStatusRejected = "rejected"
)

const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionReorder = "reorder"
	AuditActionExport  = "export"
	AuditActionRecord  = "record_results"
)
