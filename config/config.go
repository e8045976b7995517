package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	JWT        JWTConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Media      MediaConfig
	Minio      MinioConfig
	GCS        GCSConfig
	Events     EventsConfig
	RabbitMQ   RabbitMQConfig
	PubSub     PubSubConfig
	Client     ClientConfig
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

// StoreConfig selects the record store backend: "file" keeps the whole
// document in one JSON file, "postgres" keeps it in a single JSONB row.
type StoreConfig struct {
	Driver   string
	FilePath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// MediaConfig selects the object storage backend for cover image and
// avatar uploads. Empty disables the media routes.
type MediaConfig struct {
	Backend string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	Bucket          string
	ProjectID       string
	CredentialsFile string
}

// EventsConfig selects the broker content-change events are published to.
// Empty disables publishing.
type EventsConfig struct {
	Backend string
}

type RabbitMQConfig struct {
	URL          string
	QueueDurable bool
}

type PubSubConfig struct {
	ProjectID       string
	CredentialsFile string
}

// ClientConfig configures the admin panel side: where the record store
// lives and where the session file is kept.
type ClientConfig struct {
	BaseURL     string
	SessionFile string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		},
		Store: StoreConfig{
			Driver:   getEnv("STORE_DRIVER", "file"),
			FilePath: getEnv("STORE_FILE", "db.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "spellcms"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "spellcms_db"),
			UseSSL:   getEnvBool("DB_USE_SSL", false),
		},
		Media: MediaConfig{
			Backend: getEnv("MEDIA_BACKEND", ""),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "spellcms-media"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		GCS: GCSConfig{
			Bucket:          getEnv("GCS_BUCKET", ""),
			ProjectID:       getEnv("GCS_PROJECT_ID", ""),
			CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
		},
		Events: EventsConfig{
			Backend: getEnv("EVENTS_BACKEND", ""),
		},
		RabbitMQ: RabbitMQConfig{
			URL:          getEnv("RABBITMQ_URL", ""),
			QueueDurable: getEnvBool("RABBITMQ_QUEUE_DURABLE", true),
		},
		PubSub: PubSubConfig{
			ProjectID:       getEnv("PUBSUB_PROJECT_ID", ""),
			CredentialsFile: getEnv("PUBSUB_CREDENTIALS_FILE", ""),
		},
		Client: ClientConfig{
			BaseURL:     getEnv("SPELLCMS_API", "http://localhost:8080"),
			SessionFile: getEnv("SPELLCMS_SESSION_FILE", defaultSessionFile()),
		},
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "spellcms", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "1" || value == "true" || value == "yes"
	}
	return defaultValue
}
