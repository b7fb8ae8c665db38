package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
	"github.com/zatekoja/bookingengine/pkg/config"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

const confirmationTimestampLayout = "20060102150405"

// ReservationNotifier sends the booking email for a stored reservation
type ReservationNotifier interface {
	NotifyReservation(ctx context.Context, kind entities.NotificationType, reservation *entities.Reservation) bool
}

// ReservationService turns direct and OTA booking requests into stored reservations
type ReservationService struct {
	roomTypes    repositories.RoomTypeRepository
	reservations repositories.ReservationRepository
	notifier     ReservationNotifier
	events       providers.EventPublisher
	metrics      *observability.Metrics
	cfg          config.BookingConfig
	now          func() time.Time
}

// ReservationServiceOption customizes a ReservationService
type ReservationServiceOption func(*ReservationService)

// WithClock overrides the time source used for confirmation codes and timestamps
func WithClock(now func() time.Time) ReservationServiceOption {
	return func(s *ReservationService) {
		s.now = now
	}
}

// WithEventPublisher publishes a reservation.created event after each booking
func WithEventPublisher(events providers.EventPublisher) ReservationServiceOption {
	return func(s *ReservationService) {
		s.events = events
	}
}

// WithMetrics records reservation counters
func WithMetrics(metrics *observability.Metrics) ReservationServiceOption {
	return func(s *ReservationService) {
		s.metrics = metrics
	}
}

// NewReservationService creates a new reservation service
func NewReservationService(
	roomTypes repositories.RoomTypeRepository,
	reservations repositories.ReservationRepository,
	notifier ReservationNotifier,
	cfg config.BookingConfig,
	opts ...ReservationServiceOption,
) *ReservationService {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = entities.DefaultCurrency
	}
	if cfg.DefaultOTAChannel == "" {
		cfg.DefaultOTAChannel = entities.ChannelBookingCom
	}

	s := &ReservationService{
		roomTypes:    roomTypes,
		reservations: reservations,
		notifier:     notifier,
		cfg:          cfg,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDirect books a stay priced from the room type's base price
func (s *ReservationService) CreateDirect(ctx context.Context, req *entities.CreateReservationRequest) (*entities.ReservationResult, error) {
	ctx, span := observability.StartSpan(ctx, "ReservationService.CreateDirect")
	defer span.End()

	roomType, err := s.roomTypes.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	checkIn, checkOut := req.StayDates()
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return nil, apperrors.NewInvalidRangeError("check_out must be after check_in")
	}

	now := s.now().UTC()
	reservation := &entities.Reservation{
		PropertyID:       req.PropertyID,
		RoomTypeID:       req.RoomTypeID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           req.Guests,
		TotalPrice:       roomType.BasePrice * float64(nights),
		Currency:         s.cfg.DefaultCurrency,
		Channel:          entities.ChannelDirect,
		Status:           entities.ReservationStatusConfirmed,
		Guest:            req.Guest,
		SpecialRequests:  req.SpecialRequests,
		ConfirmationCode: s.confirmationCode(entities.ConfirmationPrefixDirect, now),
		CreatedAt:        now,
	}

	return s.store(ctx, entities.NotificationDirectReservation, reservation)
}

// IngestOTA records a reservation pushed by an external channel.
// A caller-supplied total price or confirmation code is used verbatim.
func (s *ReservationService) IngestOTA(ctx context.Context, req *entities.OTAReservationRequest) (*entities.ReservationResult, error) {
	ctx, span := observability.StartSpan(ctx, "ReservationService.IngestOTA")
	defer span.End()

	now := s.now().UTC()
	code := req.ConfirmationCode
	if code == "" {
		code = s.confirmationCode(entities.ConfirmationPrefixOTA, now)
	}

	checkIn, checkOut := req.StayDates()
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return nil, apperrors.NewInvalidRangeError("check_out must be after check_in")
	}

	var total float64
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	} else {
		basePrice, err := s.otaBasePrice(ctx, req.RoomTypeID)
		if err != nil {
			observability.RecordError(span, err)
			return nil, err
		}
		total = basePrice * float64(nights)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	channel := req.Channel
	if channel == "" {
		channel = s.cfg.DefaultOTAChannel
	}

	reservation := &entities.Reservation{
		PropertyID:       req.PropertyID,
		RoomTypeID:       req.RoomTypeID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           req.Guests,
		TotalPrice:       total,
		Currency:         currency,
		Channel:          channel,
		Status:           entities.ReservationStatusConfirmed,
		Guest:            req.Guest,
		ConfirmationCode: code,
		CreatedAt:        now,
	}

	return s.store(ctx, entities.NotificationOTAReservation, reservation)
}

// otaBasePrice looks up the nightly price for an OTA booking. Unless unknown
// room types are rejected, any lookup failure prices the stay at zero.
func (s *ReservationService) otaBasePrice(ctx context.Context, roomTypeID string) (float64, error) {
	roomType, err := s.roomTypes.GetByID(ctx, roomTypeID)
	if err == nil {
		return roomType.BasePrice, nil
	}

	if s.cfg.OTARejectUnknownRoomType && apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return 0, err
	}

	observability.LoggerFromContext(ctx).Warn().
		Err(err).
		Str("room_type_id", roomTypeID).
		Msg("Room type lookup failed for OTA reservation, pricing at zero")
	return 0, nil
}

func (s *ReservationService) store(ctx context.Context, kind entities.NotificationType, reservation *entities.Reservation) (*entities.ReservationResult, error) {
	id, err := s.reservations.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}
	reservation.ID = id

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("reservation.id", id),
		attribute.String("reservation.channel", reservation.Channel),
	)
	observability.RecordReservationCreated(ctx, s.metrics, reservation.Channel)
	observability.LoggerFromContext(ctx).Info().
		Str("reservation_id", id).
		Str("confirmation_code", reservation.ConfirmationCode).
		Str("channel", reservation.Channel).
		Float64("total_price", reservation.TotalPrice).
		Msg("Reservation created")

	if s.notifier != nil {
		s.notifier.NotifyReservation(ctx, kind, reservation)
	}
	s.publish(ctx, reservation)

	return &entities.ReservationResult{
		ID:               id,
		ConfirmationCode: reservation.ConfirmationCode,
	}, nil
}

func (s *ReservationService) publish(ctx context.Context, reservation *entities.Reservation) {
	if s.events == nil {
		return
	}

	event := entities.NewReservationCreatedEvent(reservation, s.now().UTC())
	channels := []string{
		providers.EventChannelReservationsCreated,
		providers.GetPropertyReservationsChannel(reservation.PropertyID),
	}
	for _, channel := range channels {
		if err := s.events.Publish(ctx, channel, event); err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("channel", channel).
				Str("reservation_id", reservation.ID).
				Msg("Failed to publish reservation event")
		}
	}
}

// confirmationCode returns PREFIX-YYYYMMDDHHMMSS, with a random suffix in unique mode
func (s *ReservationService) confirmationCode(prefix string, now time.Time) string {
	code := fmt.Sprintf("%s-%s", prefix, now.UTC().Format(confirmationTimestampLayout))
	if s.cfg.ConfirmationCodeMode == config.ConfirmationCodeUnique {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		code += "-" + strings.ToUpper(suffix)
	}
	return code
}
