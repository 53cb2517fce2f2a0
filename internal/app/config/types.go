package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type InternalConfig struct {
	App      App
	Platform Platform
	JWT      JWT
	Cache    Cache
	Root     Root
	Audit    Audit
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	BaseUrl                  string
	Timezone                 string
	EndpointPrefix           string
	ServiceAPIKey            string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	RequestTimeoutInSeconds  int
}

type Platform struct {
	BaseUrl                 string
	ServiceKey              string
	RequestTimeoutInSeconds int
	// RateLimitPerSecond caps outbound platform calls (fair-use); Burst is
	// the limiter bucket size.
	RateLimitPerSecond int
	RateLimitBurst     int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Cache struct {
	ListTTLInSeconds   int
	DetailTTLInSeconds int
}

type Root struct {
	Email        string
	PasswordHash string
}

type Audit struct {
	QueueName           string
	DeadLetterQueueName string
	Prefetch            int
	CollectionName      string
	RecentLimit         int
}
