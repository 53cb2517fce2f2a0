package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"slug":     "must contain only lowercase letters, numbers and dashes",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients. These are the strings the admin UI toasts,
// so they stay short and free of internals.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientPlatformUnavailable           = "the clinic platform is not reachable right now"
	ErrClientTaskBeingDecided              = "this task is being decided by someone else, try again"
	ErrClientRejectNoteRequired            = "a note is required when rejecting a task"
	ErrClientUnknownSortKey                = "unknown sort key"
	ErrClientSelfDemotion                  = "you cannot change your own role or status"
	ErrClientExportFailed                  = "failed to build the export"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "request validation failed"
	ErrDevURLParamIDValidationFailed  = "invalid url param: %s"
	ErrDevCannotParseJSON             = "failed to parse JSON body"
	ErrDevCannotMarshalJSON           = "failed to marshal value to JSON"
	ErrDevBuildRequest                = "failed to build request DTO"
	ErrDevServerDeadlineExceeded      = "context deadline exceeded while serving request"
	ErrDevAuthTokenMissing            = "authorization token is missing"
	ErrDevAuthTokenInvalid            = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod           = "unexpected jwt signing method"
	ErrDevAuthGenerateToken           = "failed to sign session token"
	ErrDevAuthInvalidSession          = "session not found or expired"
	ErrDevAuthRoleNotAllowed          = "session role is not allowed on this route"
	ErrDevAuthInvalidAPIKey           = "presented api key does not match the configured service key"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevInvalidRootCredentials      = "break-glass root credentials do not match"
	ErrDevRedisSet                    = "failed to set value in redis"
	ErrDevRedisGet                    = "failed to get value from redis, key: %s"
	ErrDevRedisDelete                 = "failed to delete key from redis"
	ErrDevRedisAddToSet               = "failed to add member to redis set"
	ErrDevRedisGetSetMembers          = "failed to read redis set members"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevRedisEval                   = "failed to run redis script"
	ErrDevCreateHTTPRequest           = "failed to create http request"
	ErrDevSendHTTPRequest             = "failed to send http request"
	ErrDevDecodeResponse              = "failed to decode %s response"
	ErrDevPlatformRequest             = "platform request for %s failed"
	ErrDevPlatformRateLimited         = "outbound platform limiter rejected the call"
	ErrDevMongoDBFindDocument         = "failed to find document in mongodb"
	ErrDevMongoDBInsertDocument       = "failed to insert document into mongodb"
	ErrDevMongoDBIterateDocuments     = "failed to iterate mongodb cursor"
	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket %s"
	ErrDevQueuePublish                = "failed to publish message to queue"
	ErrDevQueueConfirm                = "queue publish was not confirmed by broker"
	ErrDevPrintTemplateExecute        = "failed to execute print template"
	ErrDevTaskDecisionLockNotAcquired = "task decision lock not acquired"
)
