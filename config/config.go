package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort            string `mapstructure:"APP_PORT"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin  int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling and booking.
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	Timezone          string        `mapstructure:"TIMEZONE"`
	Currency          string        `mapstructure:"CURRENCY"`
	WorkerConcurrency int           `mapstructure:"WORKER_CONCURRENCY"`

	// Booking events; publishing is off while KAFKA_BROKERS is empty.
	KafkaBrokers      string `mapstructure:"KAFKA_BROKERS"` // comma separated
	KafkaBookingTopic string `mapstructure:"KAFKA_BOOKING_TOPIC"`

	// Tracing.
	OTelEnabled     bool    `mapstructure:"OTEL_ENABLED"`
	OTelEndpoint    string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelSampleRatio float64 `mapstructure:"OTEL_SAMPLING_RATIO"`
	OTelServiceName string  `mapstructure:"OTEL_SERVICE_NAME"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bethanyblooms")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("TIMEZONE", "Africa/Johannesburg")
	viper.SetDefault("CURRENCY", "ZAR")
	viper.SetDefault("WORKER_CONCURRENCY", 5)
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_BOOKING_TOPIC", "booking.requested")
	viper.SetDefault("OTEL_ENABLED", false)
	viper.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	viper.SetDefault("OTEL_SAMPLING_RATIO", 1.0)
	viper.SetDefault("OTEL_SERVICE_NAME", "bethany-blooms-scheduling")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location is the storefront's display timezone. Sessions are generated and
// labelled in this zone. An unknown zone falls back to UTC.
func Location() *time.Location {
	if AppConfig.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC", AppConfig.Timezone)
		return time.UTC
	}
	return loc
}

// SplitList splits a comma separated setting, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into a list.
func AllowedOrigins() []string {
	origins := SplitList(AppConfig.CORSAllowedOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
