package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/bookingengine/internal/adapters/cache"
	"github.com/zatekoja/bookingengine/internal/adapters/database"
	"github.com/zatekoja/bookingengine/internal/adapters/events"
	"github.com/zatekoja/bookingengine/internal/api/handlers"
	"github.com/zatekoja/bookingengine/internal/api/routes"
	"github.com/zatekoja/bookingengine/internal/application/services"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/internal/infrastructure/clients/mongo"
	"github.com/zatekoja/bookingengine/internal/infrastructure/clients/redis"
	"github.com/zatekoja/bookingengine/internal/infrastructure/notifications"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
	"github.com/zatekoja/bookingengine/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Log.Environment, cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	mongoClient, err := mongo.NewClient(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MongoDB client")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	// Redis backs the room type cache and the event bus when enabled;
	// otherwise an in-process cache is used and events are dropped.
	var (
		cacheProvider providers.CacheProvider
		eventBus      = events.NewNoopEventBus()
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis client, falling back to local cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}
	if cacheProvider == nil {
		localCache := cache.NewLocalAdapter(0)
		defer localCache.Stop()
		cacheProvider = localCache
	}

	propertyRepo := database.NewPropertyAdapter(mongoClient)
	roomTypeRepo := database.NewCachedRoomTypeAdapter(database.NewRoomTypeAdapter(mongoClient), cacheProvider, metrics)
	reservationRepo := database.NewReservationAdapter(mongoClient)

	notificationService := services.NewNotificationService(notifications.NewEmailSender(cfg.SMTP), cfg.Notification, metrics)
	reservationService := services.NewReservationService(
		roomTypeRepo,
		reservationRepo,
		notificationService,
		cfg.Booking,
		services.WithEventPublisher(eventBus),
		services.WithMetrics(metrics),
	)

	router := routes.NewRouter(
		handlers.NewSystemHandler(services.NewDiagnosticsService(mongoClient, cfg.Mongo, mongo.Collections)),
		handlers.NewCatalogHandler(services.NewPropertyService(propertyRepo), services.NewRoomTypeService(roomTypeRepo)),
		handlers.NewReservationHandler(reservationService, services.NewAvailabilityService(roomTypeRepo)),
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	serverAddr := cfg.Server.ServerAddr()
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing event bus")
	}

	log.Info().Msg("Server stopped")
}
