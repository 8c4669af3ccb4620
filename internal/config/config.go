package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB holds uploaded files (GridFS)
	MongoDB MongoDBConfig `json:"mongodb"`

	Redis RedisConfig `json:"redis"`

	// Kafka carries email jobs from the API to the mail worker
	Kafka KafkaConfig `json:"kafka"`

	// Email Configuration (mail worker only)
	Email EmailConfig `json:"email"`

	Auth AuthConfig `json:"auth"`

	Scheduler SchedulerConfig `json:"scheduler"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`

	App AppConfig `json:"app"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port           string `json:"port"`
	Host           string `json:"host"`
	ReadTimeout    int    `json:"read_timeout"`
	WriteTimeout   int    `json:"write_timeout"`
	Environment    string `json:"environment"` // development, staging, production
	MaxUploadBytes int64  `json:"max_upload_bytes"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
	AutoMigrate  bool   `json:"auto_migrate"`
}

type MongoDBConfig struct {
	Host       string `json:"host"`
	Port       string `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Database   string `json:"database"`
	BucketName string `json:"bucket_name"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type KafkaConfig struct {
	Brokers    []string `json:"brokers"`
	EmailTopic string   `json:"email_topic"`
	GroupID    string   `json:"group_id"`
	Enabled    bool     `json:"enabled"`
}

// EmailConfig contains SMTP configuration used by the mail worker
type EmailConfig struct {
	SMTPHost  string `json:"smtp_host"`
	SMTPPort  int    `json:"smtp_port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	UseTLS    bool   `json:"use_tls"`
	Workers   int    `json:"workers"`
}

type AuthConfig struct {
	JWTSecret     string `json:"-"`
	TokenTTLHours int    `json:"token_ttl_hours"`
	Issuer        string `json:"issuer"`
}

type SchedulerConfig struct {
	RemindUnverifiedSpec string `json:"remind_unverified_spec"`
	Enabled              bool   `json:"enabled"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `json:"level"` // debug, info, warn, error
	Dev      bool   `json:"dev"`
	FilePath string `json:"file_path"` // empty disables the rotating file
}

type AppConfig struct {
	FrontendURL     string `json:"frontend_url"`
	AssetURL        string `json:"asset_url"`
	DefaultLanguage string `json:"default_language"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("SERVER_PORT", "8080"),
			Host:           getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:    getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:   getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			Environment:    getEnvOrDefault("APP_ENV", "development"),
			MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 1024)) << 20,
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("MYSQL_HOST", "localhost"),
			Port:         getEnvOrDefault("MYSQL_PORT", "3306"),
			Username:     getEnvOrDefault("MYSQL_USERNAME", "proapp"),
			Password:     getEnvOrDefault("MYSQL_PASSWORD", "proapp"),
			DatabaseName: getEnvOrDefault("MYSQL_DATABASE", "proapp"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
			AutoMigrate:  getEnvBool("MYSQL_AUTO_MIGRATE", true),
		},
		MongoDB: MongoDBConfig{
			Host:       getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:       getEnvOrDefault("MONGO_PORT", "27017"),
			Username:   getEnvOrDefault("MONGO_USERNAME", ""),
			Password:   getEnvOrDefault("MONGO_PASSWORD", ""),
			Database:   getEnvOrDefault("MONGO_DATABASE", "proapp"),
			BucketName: getEnvOrDefault("MONGO_BUCKET", "uploads"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(getEnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
			EmailTopic: getEnvOrDefault("KAFKA_EMAIL_TOPIC", "proapp.email"),
			GroupID:    getEnvOrDefault("KAFKA_GROUP_ID", "proapp-mail-worker"),
			Enabled:    getEnvBool("KAFKA_ENABLED", true),
		},
		Email: EmailConfig{
			SMTPHost:  getEnvOrDefault("SMTP_HOST", ""),
			SMTPPort:  getEnvInt("SMTP_PORT", 587),
			Username:  getEnvOrDefault("SMTP_USERNAME", ""),
			Password:  getEnvOrDefault("SMTP_PASSWORD", ""),
			FromEmail: getEnvOrDefault("FROM_EMAIL", "no-reply@proapp.local"),
			FromName:  getEnvOrDefault("FROM_NAME", "Pro"),
			UseTLS:    getEnvBool("SMTP_TLS", true),
			Workers:   getEnvInt("MAIL_WORKERS", 4),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
			TokenTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
			Issuer:        getEnvOrDefault("JWT_ISSUER", "proapp"),
		},
		Scheduler: SchedulerConfig{
			RemindUnverifiedSpec: getEnvOrDefault("REMIND_UNVERIFIED_CRON", "1 */12 * * *"),
			Enabled:              getEnvBool("SCHEDULER_ENABLED", true),
		},
		Logging: LoggingConfig{
			Level:    getEnvOrDefault("LOG_LEVEL", "info"),
			Dev:      getEnvOrDefault("LOG_DEV", "0") == "1",
			FilePath: getEnvOrDefault("LOG_FILE", ""),
		},
		App: AppConfig{
			FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
			AssetURL:        getEnvOrDefault("ASSET_URL", "http://localhost:8080"),
			DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "no"),
		},
	}
}

// Validate rejects configurations that cannot run outside development.
func (cfg *Config) Validate() error {
	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		cfg.Auth.JWTSecret = "dev-secret"
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("JWT_TTL_HOURS must be positive, got %d", cfg.Auth.TokenTTLHours)
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is empty while kafka is enabled")
	}
	return nil
}

func (cfg *Config) IsProduction() bool {
	return cfg.Server.Environment == "production"
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
