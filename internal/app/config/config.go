package config

import (
	"medicore-admin-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medicore_admin"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medicore-exports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			BaseUrl:                  utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			ServiceAPIKey:            utils.GetEnvString("APP_SERVICE_API_KEY", ""),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Platform: Platform{
			BaseUrl:                 utils.GetEnvString("PLATFORM_BASE_URL", "http://localhost:5500/api"),
			ServiceKey:              utils.GetEnvString("PLATFORM_SERVICE_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("PLATFORM_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond:      utils.GetEnvInt("PLATFORM_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:          utils.GetEnvInt("PLATFORM_RATE_LIMIT_BURST", 40),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Cache: Cache{
			ListTTLInSeconds:   utils.GetEnvInt("CACHE_LIST_TTL_IN_SECONDS", 60),
			DetailTTLInSeconds: utils.GetEnvInt("CACHE_DETAIL_TTL_IN_SECONDS", 30),
		},
		Root: Root{
			Email:        utils.GetEnvString("APP_ROOT_EMAIL", ""),
			PasswordHash: utils.GetEnvString("APP_ROOT_PASSWORD_HASH", ""),
		},
		Audit: Audit{
			QueueName:           utils.GetEnvString("AUDIT_QUEUE_NAME", "medicore_admin_audit_queue"),
			DeadLetterQueueName: utils.GetEnvString("AUDIT_DLQ_NAME", "medicore_admin_audit_dlq"),
			Prefetch:            utils.GetEnvInt("AUDIT_QUEUE_PREFETCH", 10),
			CollectionName:      utils.GetEnvString("AUDIT_COLLECTION_NAME", "audit_events"),
			RecentLimit:         utils.GetEnvInt("AUDIT_RECENT_LIMIT", 10),
		},
	}
}
