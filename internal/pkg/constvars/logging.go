package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingRedisKey        = "redis_key"
	LoggingCacheGroupKey   = "cache_group"
	LoggingPlatformUrlKey  = "platform_url"
	LoggingTaskIDKey       = "task_id"
	LoggingOrganizationKey = "organization_id"
	LoggingUserIDKey       = "user_id"
	LoggingMedicineIDKey   = "medicine_id"
	LoggingLabOrderIDKey   = "lab_order_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingSessionIDKey    = "session_id"
	LoggingActorIDKey      = "actor_id"
	LoggingCountKey        = "count"
	LoggingObjectNameKey   = "object_name"
	LoggingLockValueKey    = "lock_value"
	LoggingLockTTLKey      = "lock_ttl"
)
