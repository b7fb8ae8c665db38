package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/bookingengine/internal/adapters/database"
	"github.com/zatekoja/bookingengine/internal/application/services"
	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/infrastructure/clients/mongo"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
	"github.com/zatekoja/bookingengine/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger("booking-engine-seed", cfg.Log.Environment, cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mongoClient, err := mongo.NewClient(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoClient.Close(context.Background())

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping collections before seeding")
		for _, name := range mongo.Collections {
			if err := mongoClient.Database().Collection(name).Drop(ctx); err != nil {
				log.Fatal().Err(err).Str("collection", name).Msg("Failed to drop collection")
			}
		}
	}

	propertyService := services.NewPropertyService(database.NewPropertyAdapter(mongoClient))
	roomTypeService := services.NewRoomTypeService(database.NewRoomTypeAdapter(mongoClient))

	propertyID, err := propertyService.Create(ctx, &entities.Property{
		Name:         "Harbour View Hotel",
		Address:      "12 Marina Road",
		City:         "Lagos",
		Country:      "NG",
		Timezone:     "Africa/Lagos",
		ContactEmail: "frontdesk@harbourview.example.com",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create property")
	}
	log.Info().Str("property_id", propertyID).Msg("Seeded property")

	roomTypes := []entities.RoomType{
		{PropertyID: propertyID, Name: "Standard Double", Description: "Queen bed, city view", MaxGuests: 2, BasePrice: 100},
		{PropertyID: propertyID, Name: "Family Suite", Description: "Two bedrooms, sea view", MaxGuests: 4, BasePrice: 240},
	}
	for i := range roomTypes {
		id, err := roomTypeService.Create(ctx, &roomTypes[i])
		if err != nil {
			log.Error().Err(err).Str("name", roomTypes[i].Name).Msg("Failed to create room type")
			continue
		}
		log.Info().Str("room_type_id", id).Str("name", roomTypes[i].Name).Msg("Seeded room type")
	}

	log.Info().Msg("Seeding complete")
}
