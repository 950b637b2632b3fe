package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr string `yaml:"addr"`

	// Slot storage: sqlite file by default, postgres when DBHost is set.
	SQLitePath string `yaml:"sqlite_path"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`

	AgentAPI AgentAPIConfig `yaml:"agent_api"`

	// Optional snapshot archive. Disabled when MinIOEndpoint is empty.
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
}

// AgentAPIConfig controls how agent replies are produced: templated mock
// responses by default, or a real backend at BaseURL when UseMock is false.
type AgentAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	UseMock bool          `yaml:"use_mock"`
}

func LoadConfig() Config {
	// No .env file means system environment only.
	_ = godotenv.Load()

	cfg := Config{
		Addr:           getEnv("ADDR", ":8000"),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/agentdash.db"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", ""),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "agentdash"),
		AgentAPI: AgentAPIConfig{
			BaseURL: getEnv("AGENT_API_BASE_URL", "/api"),
			Timeout: getEnvDuration("AGENT_API_TIMEOUT_MS", 30000),
			UseMock: getEnvBool("AGENT_API_USE_MOCK", true),
		},
	}

	// CONFIG_FILE overlays the env-derived config with YAML values.
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	value := os.Getenv(key)
	if value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
