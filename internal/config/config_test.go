package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultBehavior(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config := LoadConfig()
	require.NotNil(t, config)

	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, "3306", config.Database.Port)
	assert.Equal(t, "proapp", config.Database.Username)
	assert.Equal(t, "proapp", config.Database.DatabaseName)
	assert.Equal(t, 25, config.Database.MaxOpenConns)
	assert.Equal(t, 5, config.Database.MaxIdleConns)
	assert.True(t, config.Database.AutoMigrate)

	assert.Equal(t, "localhost", config.MongoDB.Host)
	assert.Equal(t, "27017", config.MongoDB.Port)
	assert.Equal(t, "uploads", config.MongoDB.BucketName)

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "development", config.Server.Environment)
	assert.Equal(t, int64(1024<<20), config.Server.MaxUploadBytes)

	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "proapp.email", config.Kafka.EmailTopic)
	assert.Equal(t, "1 */12 * * *", config.Scheduler.RemindUnverifiedSpec)
	assert.Equal(t, "no", config.App.DefaultLanguage)
	assert.Equal(t, 24, config.Auth.TokenTTLHours)
	assert.Equal(t, 587, config.Email.SMTPPort)
}

func TestLoadConfig_WithEnvironmentOverrides(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"MYSQL_HOST":        "test-db-host",
		"MYSQL_PORT":        "3307",
		"MYSQL_USERNAME":    "test-user",
		"MONGO_HOST":        "test-mongo",
		"MONGO_PORT":        "27018",
		"KAFKA_BROKERS":     "k1:9092, k2:9092",
		"KAFKA_ENABLED":     "false",
		"SMTP_HOST":         "smtp.test.com",
		"SMTP_PORT":         "2525",
		"LOG_LEVEL":         "debug",
		"LOG_DEV":           "1",
		"DEFAULT_LANGUAGE":  "en",
		"MAX_UPLOAD_MB":     "8",
		"SCHEDULER_ENABLED": "false",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config := LoadConfig()

	assert.Equal(t, "test-db-host", config.Database.Host)
	assert.Equal(t, "3307", config.Database.Port)
	assert.Equal(t, "test-user", config.Database.Username)
	assert.Equal(t, "test-mongo", config.MongoDB.Host)
	assert.Equal(t, "27018", config.MongoDB.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, config.Kafka.Brokers)
	assert.False(t, config.Kafka.Enabled)
	assert.Equal(t, "smtp.test.com", config.Email.SMTPHost)
	assert.Equal(t, 2525, config.Email.SMTPPort)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.True(t, config.Logging.Dev)
	assert.Equal(t, "en", config.App.DefaultLanguage)
	assert.Equal(t, int64(8<<20), config.Server.MaxUploadBytes)
	assert.False(t, config.Scheduler.Enabled)
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	// clearTestEnvVars registers cleanups, so whatever godotenv sets is restored.
	clearTestEnvVars(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := "MYSQL_DATABASE=from_dotenv\nFRONTEND_URL=https://app.example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	config := LoadConfig()

	assert.Equal(t, "from_dotenv", config.Database.DatabaseName)
	assert.Equal(t, "https://app.example.com", config.App.FrontendURL)
}

func TestDSN_Generation(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Host:         "test-host",
			Port:         "3307",
			Username:     "testuser",
			Password:     "testpass",
			DatabaseName: "testdb",
		},
	}

	expected := "testuser:testpass@tcp(test-host:3307)/testdb?charset=utf8mb4&parseTime=True&loc=Local"
	assert.Equal(t, expected, config.DSN())
}

func TestDSN_WithEmptyHostPort(t *testing.T) {
	config := &Config{
		Database: DatabaseConfig{
			Username:     "testuser",
			Password:     "testpass",
			DatabaseName: "testdb",
		},
	}

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=True&loc=Local"
	assert.Equal(t, expected, config.DSN())
}

func TestGetMongoURI(t *testing.T) {
	withAuth := &Config{MongoDB: MongoDBConfig{Host: "mongo-host", Port: "27017", Username: "u", Password: "p"}}
	assert.Equal(t, "mongodb://u:p@mongo-host:27017/?authSource=admin", withAuth.GetMongoURI())

	withoutAuth := &Config{MongoDB: MongoDBConfig{Host: "mongo-host", Port: "27017"}}
	assert.Equal(t, "mongodb://mongo-host:27017", withoutAuth.GetMongoURI())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		errContains string
		wantSecret  string
	}{
		{
			name:       "development gets a fallback secret",
			cfg:        Config{Server: ServerConfig{Environment: "development"}, Auth: AuthConfig{TokenTTLHours: 1}},
			wantSecret: "dev-secret",
		},
		{
			name:        "production needs a secret",
			cfg:         Config{Server: ServerConfig{Environment: "production"}, Auth: AuthConfig{TokenTTLHours: 1}},
			wantErr:     true,
			errContains: "JWT_SECRET",
		},
		{
			name:        "non positive ttl",
			cfg:         Config{Auth: AuthConfig{JWTSecret: "s", TokenTTLHours: 0}},
			wantErr:     true,
			errContains: "JWT_TTL_HOURS",
		},
		{
			name:        "kafka enabled without brokers",
			cfg:         Config{Auth: AuthConfig{JWTSecret: "s", TokenTTLHours: 1}, Kafka: KafkaConfig{Enabled: true}},
			wantErr:     true,
			errContains: "KAFKA_BROKERS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSecret, tc.cfg.Auth.JWTSecret)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_KEY", "test_value")
	assert.Equal(t, "test_value", getEnvOrDefault("TEST_KEY", "default_value"))
	assert.Equal(t, "default_value", getEnvOrDefault("NON_EXISTENT_KEY", "default_value"))

	t.Setenv("TEST_INT", "42")
	t.Setenv("INVALID_INT", "not-a-number")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 10))
	assert.Equal(t, 10, getEnvInt("INVALID_INT", 10))
	assert.Equal(t, 100, getEnvInt("NON_EXISTENT_INT", 100))

	t.Setenv("TEST_BOOL", "false")
	t.Setenv("BAD_BOOL", "maybe")
	assert.False(t, getEnvBool("TEST_BOOL", true))
	assert.True(t, getEnvBool("BAD_BOOL", true))
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envKeys := []string{
		"MYSQL_HOST", "MYSQL_PORT", "MYSQL_USERNAME", "MYSQL_PASSWORD", "MYSQL_DATABASE",
		"MYSQL_MAX_OPEN_CONNS", "MYSQL_MAX_IDLE_CONNS", "MYSQL_AUTO_MIGRATE",
		"MONGO_HOST", "MONGO_PORT", "MONGO_USERNAME", "MONGO_PASSWORD", "MONGO_DATABASE", "MONGO_BUCKET",
		"SERVER_PORT", "SERVER_HOST", "APP_ENV", "MAX_UPLOAD_MB",
		"KAFKA_BROKERS", "KAFKA_EMAIL_TOPIC", "KAFKA_ENABLED",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "FROM_EMAIL", "FROM_NAME",
		"JWT_SECRET", "JWT_TTL_HOURS", "REMIND_UNVERIFIED_CRON", "SCHEDULER_ENABLED",
		"LOG_LEVEL", "LOG_DEV", "LOG_FILE", "FRONTEND_URL", "ASSET_URL", "DEFAULT_LANGUAGE",
	}

	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
