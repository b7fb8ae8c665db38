package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	metrics, err := InitMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, metrics, "POST", "/api/reservations", 200, 15*time.Millisecond)
		RecordReservationCreated(ctx, metrics, "direct")
		RecordNotificationFailed(ctx, metrics, "direct_reservation")
		RecordCacheHit(ctx, metrics, "roomtype")
		RecordCacheMiss(ctx, metrics, "roomtype")
	})
}

func TestRecordersAcceptNilMetrics(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, nil, "GET", "/", 200, time.Millisecond)
		RecordReservationCreated(ctx, nil, "booking.com")
		RecordNotificationFailed(ctx, nil, "ota_reservation")
		RecordCacheHit(ctx, nil, "roomtype")
		RecordCacheMiss(ctx, nil, "roomtype")
	})
}

func TestLoggerFromContextWithoutSpan(t *testing.T) {
	InitLogger("booking-engine-test", "test", "debug")

	logger := LoggerFromContext(context.Background())

	require.NotNil(t, logger)
}
