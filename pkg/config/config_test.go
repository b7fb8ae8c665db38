package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_PORT", "DATABASE_URL", "DATABASE_NAME",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_SENDER",
		"BOOKING_NOTIFICATION_EMAIL", "CONFIRMATION_CODE_MODE", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "booking_engine", cfg.Mongo.Database)
	assert.False(t, cfg.Mongo.URISet)
	assert.False(t, cfg.Mongo.DatabaseSet)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.Equal(t, "no-reply@example.com", cfg.SMTP.Sender)
	assert.Empty(t, cfg.Notification.OperatorEmail)
	assert.Equal(t, ConfirmationCodeTimestamp, cfg.Booking.ConfirmationCodeMode)
	assert.Equal(t, "USD", cfg.Booking.DefaultCurrency)
	assert.Equal(t, "booking.com", cfg.Booking.DefaultOTAChannel)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MongoFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.True(t, cfg.Mongo.URISet)
	assert.False(t, cfg.Mongo.DatabaseSet)
}

func TestLoad_SMTPConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "mailer@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_SENDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "secret", cfg.SMTP.Password)
	// sender falls back to the SMTP user
	assert.Equal(t, "mailer@example.com", cfg.SMTP.Sender)
}

func TestLoad_PortPrecedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)

	t.Setenv("PORT", "7000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.ServerAddr())
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidConfirmationCodeMode(t *testing.T) {
	t.Setenv("CONFIRMATION_CODE_MODE", "random")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIRMATION_CODE_MODE")
}

func TestLoad_UniqueConfirmationCodeMode(t *testing.T) {
	t.Setenv("CONFIRMATION_CODE_MODE", "UNIQUE")
	t.Setenv("OTA_REJECT_UNKNOWN_ROOM_TYPE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ConfirmationCodeUnique, cfg.Booking.ConfirmationCodeMode)
	assert.True(t, cfg.Booking.OTARejectUnknownRoomType)
}

func TestValidate_Currency(t *testing.T) {
	cfg := &Config{
		SMTP:    SMTPConfig{Port: 587},
		Booking: BookingConfig{ConfirmationCodeMode: ConfirmationCodeTimestamp, DefaultCurrency: "EURO"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Booking.DefaultCurrency = "EUR"
	assert.NoError(t, cfg.Validate())
}
