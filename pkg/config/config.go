package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig
	Mongo        MongoConfig
	SMTP         SMTPConfig
	Notification NotificationConfig
	Booking      BookingConfig
	Redis        RedisConfig
	CORS         CORSConfig
	OTEL         OTELConfig
	Log          LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string

	// URISet and DatabaseSet report whether the values came from the
	// environment rather than defaults
	URISet      bool
	DatabaseSet bool
}

// SMTPConfig holds outbound mail transport configuration.
// An empty Host disables delivery; messages are only logged.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Sender   string
}

// NotificationConfig holds booking notification settings
type NotificationConfig struct {
	// OperatorEmail overrides the guest address as the recipient of
	// booking notifications when set.
	OperatorEmail string
}

// Confirmation code modes
const (
	ConfirmationCodeTimestamp = "timestamp"
	ConfirmationCodeUnique    = "unique"
)

// BookingConfig holds reservation intake settings
type BookingConfig struct {
	ConfirmationCodeMode     string
	OTARejectUnknownRoomType bool
	DefaultCurrency          string
	DefaultOTAChannel        string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins []string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level       string
	Environment string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	smtpUser := getEnv("SMTP_USER", "")
	senderDefault := smtpUser
	if senderDefault == "" {
		senderDefault = "no-reply@example.com"
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", getEnvAsInt("SERVER_PORT", 8000)),
		},
		Mongo: MongoConfig{
			URI:         getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			Database:    getEnv("DATABASE_NAME", "booking_engine"),
			URISet:      os.Getenv("DATABASE_URL") != "",
			DatabaseSet: os.Getenv("DATABASE_NAME") != "",
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     smtpUser,
			Password: getEnv("SMTP_PASS", ""),
			Sender:   getEnv("SMTP_SENDER", senderDefault),
		},
		Notification: NotificationConfig{
			OperatorEmail: getEnv("BOOKING_NOTIFICATION_EMAIL", ""),
		},
		Booking: BookingConfig{
			ConfirmationCodeMode:     strings.ToLower(getEnv("CONFIRMATION_CODE_MODE", ConfirmationCodeTimestamp)),
			OTARejectUnknownRoomType: getEnvAsBool("OTA_REJECT_UNKNOWN_ROOM_TYPE", false),
			DefaultCurrency:          getEnv("DEFAULT_CURRENCY", "USD"),
			DefaultOTAChannel:        getEnv("DEFAULT_OTA_CHANNEL", "booking.com"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "booking-engine"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: getEnv("APP_ENV", "production"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Booking.ConfirmationCodeMode {
	case ConfirmationCodeTimestamp, ConfirmationCodeUnique:
	default:
		return fmt.Errorf("invalid CONFIRMATION_CODE_MODE %q (want %q or %q)",
			c.Booking.ConfirmationCodeMode, ConfirmationCodeTimestamp, ConfirmationCodeUnique)
	}
	if len(c.Booking.DefaultCurrency) != 3 {
		return fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", c.Booking.DefaultCurrency)
	}
	if c.SMTP.Port <= 0 {
		return fmt.Errorf("SMTP_PORT must be positive, got %d", c.SMTP.Port)
	}
	return nil
}

// Configured reports whether a mail transport host is set
func (c *SMTPConfig) Configured() bool {
	return c.Host != ""
}

// ServerAddr returns the HTTP listen address
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
