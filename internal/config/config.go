package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Таймаут проверки соединения с Postgres и Redis при старте
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Route & tracking
	RouteFile         string `env:"ROUTE_FILE" envDefault:"route.yml"`
	AutoRegisterBoats bool   `env:"AUTO_REGISTER_BOATS" envDefault:"true"`
	HistorySize       int    `env:"HISTORY_SIZE" envDefault:"50"`
	IncidentLimit     int    `env:"INCIDENT_LIMIT" envDefault:"200"`

	// Corridor & incident policy
	CorridorSoftRatio      float64       `env:"CORRIDOR_SOFT_RATIO" envDefault:"0.5"`
	MaxSpeedKmh            float64       `env:"MAX_SPEED_KMH" envDefault:"15"`
	StopGracePeriod        time.Duration `env:"STOP_GRACE_PERIOD" envDefault:"3m"`
	StaleAfter             time.Duration `env:"STALE_AFTER" envDefault:"2m"`
	SweepInterval          time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	FinishThresholdPercent float64       `env:"FINISH_THRESHOLD_PERCENT" envDefault:"99"`

	// Kafka ingestion, выключено, если брокеры не заданы
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"boat-fixes"`
	KafkaGroupID string   `env:"KAFKA_GROUP_ID" envDefault:"parade-tracker"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBMaxConns:             getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		ConnectTimeout:         getEnvAsDuration("CONNECT_TIMEOUT", 5*time.Second),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		RouteFile:              getEnv("ROUTE_FILE", "route.yml"),
		AutoRegisterBoats:      getEnvAsBool("AUTO_REGISTER_BOATS", true),
		HistorySize:            getEnvAsInt("HISTORY_SIZE", 50),
		IncidentLimit:          getEnvAsInt("INCIDENT_LIMIT", 200),
		CorridorSoftRatio:      getEnvAsFloat("CORRIDOR_SOFT_RATIO", 0.5),
		MaxSpeedKmh:            getEnvAsFloat("MAX_SPEED_KMH", 15),
		StopGracePeriod:        getEnvAsDuration("STOP_GRACE_PERIOD", 3*time.Minute),
		StaleAfter:             getEnvAsDuration("STALE_AFTER", 2*time.Minute),
		SweepInterval:          getEnvAsDuration("SWEEP_INTERVAL", 30*time.Second),
		FinishThresholdPercent: getEnvAsFloat("FINISH_THRESHOLD_PERCENT", 99),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "boat-fixes"),
		KafkaGroupID:           getEnv("KAFKA_GROUP_ID", "parade-tracker"),
	}

	// Загрузка API ключей
	cfg.APIKeys = getEnvAsList("API_KEYS")
	cfg.KafkaBrokers = getEnvAsList("KAFKA_BROKERS")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// MaxSpeedMetersPerSec переводит лимит скорости в м/с
func (c *Config) MaxSpeedMetersPerSec() float64 {
	return c.MaxSpeedKmh / 3.6
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений через запятую
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
