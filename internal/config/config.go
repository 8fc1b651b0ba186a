package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Gateway  GatewayConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Poller   PollerConfig
	Worker   WorkerConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// GatewayConfig holds the WhatsApp messaging gateway settings
type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// KafkaConfig holds Kafka topics and broker configuration
type KafkaConfig struct {
	Brokers       string
	DispatchTopic string
	EventsTopic   string
	ConsumerGroup string
}

// RedisConfig holds redis cache configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// PollerConfig holds device status poller settings
type PollerConfig struct {
	Interval time.Duration
	MaxPolls int
}

// WorkerConfig holds dispatch planner/worker configuration
type WorkerConfig struct {
	PlannerInterval   time.Duration
	PlannerBatchSize  int
	ActivatorInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Gateway configuration
	if cfg.Gateway.BaseURL, err = requireEnv("GATEWAY_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.Gateway.APIKey, err = requireEnv("GATEWAY_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Gateway.Timeout, err = durationEnv("GATEWAY_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.DispatchTopic = getEnvWithDefault("KAFKA_DISPATCH_TOPIC", "campaign-dispatch")
	cfg.Kafka.EventsTopic = getEnvWithDefault("KAFKA_EVENTS_TOPIC", "campaign-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "dispatch-workers")

	// Redis configuration (optional status cache)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
			return nil, err
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
			return nil, err
		}
	}

	// Poller configuration
	if cfg.Poller.Interval, err = durationEnv("POLLER_INTERVAL", 12*time.Second); err != nil {
		return nil, err
	}
	if cfg.Poller.MaxPolls, err = intEnv("POLLER_MAX_POLLS", 10); err != nil {
		return nil, err
	}

	// Worker configuration
	if cfg.Worker.PlannerInterval, err = durationEnv("PLANNER_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Worker.PlannerBatchSize, err = intEnv("PLANNER_BATCH_SIZE", 200); err != nil {
		return nil, err
	}
	if cfg.Worker.ActivatorInterval, err = durationEnv("ACTIVATOR_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = []string{getEnvWithDefault("DASHBOARD_URI", "http://localhost:3000")}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// intEnv parses an integer environment variable with a default
func intEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

// durationEnv parses a duration environment variable with a default
func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
