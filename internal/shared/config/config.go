package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	MongoDB    MongoDBConfig
	RabbitMQ   RabbitMQConfig
	Email      EmailConfig
	Push       PushConfig
	Dispatcher DispatcherConfig
	Server     ServerConfig
}

// MongoDBConfig holds MongoDB configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RabbitMQConfig holds RabbitMQ configuration. An empty URL disables
// event publishing and the account-purge consumer.
type RabbitMQConfig struct {
	URL string
}

// EmailConfig holds Resend email provider configuration
type EmailConfig struct {
	APIKey      string
	SenderEmail string
	APIURL      string
}

// PushConfig holds FCM push provider configuration
type PushConfig struct {
	ServerKey string
	APIURL    string
}

// DispatcherConfig holds reminder dispatcher configuration
type DispatcherConfig struct {
	// CronSpec drives the internal scheduler. The dispatcher's due-time
	// tolerance is one minute, so anything slower than "* * * * *" risks
	// skipped reminders. "off" disables the internal scheduler entirely,
	// leaving invocation to an external cron hitting the process endpoint.
	CronSpec string
	// DedupWindowMinutes is the reminder-history lookback used to
	// suppress duplicate sends across overlapping runs.
	DedupWindowMinutes int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string
	RateLimitPerClient float64
	RateLimitBurst     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dedupWindow, _ := strconv.Atoi(getEnv("REMINDER_DEDUP_WINDOW_MINUTES", "5"))
	ratePerClient, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_CLIENT", "10"), 64)
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	return &Config{
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "faceglow"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: getEnv("RABBITMQ_URL", ""),
		},
		Email: EmailConfig{
			APIKey:      getEnv("RESEND_API_KEY", ""),
			SenderEmail: getEnv("SENDER_EMAIL", ""),
			APIURL:      getEnv("RESEND_API_URL", "https://api.resend.com/emails"),
		},
		Push: PushConfig{
			ServerKey: getEnv("FIREBASE_SERVER_KEY", ""),
			APIURL:    getEnv("FCM_API_URL", "https://fcm.googleapis.com/fcm/send"),
		},
		Dispatcher: DispatcherConfig{
			CronSpec:           getEnv("REMINDER_CRON", "* * * * *"),
			DedupWindowMinutes: dedupWindow,
		},
		Server: ServerConfig{
			Port:               getEnv("REMINDER_SERVICE_PORT", "8084"),
			RateLimitPerClient: ratePerClient,
			RateLimitBurst:     rateBurst,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
