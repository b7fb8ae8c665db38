package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/zatekoja/bookingengine/pkg/config"
	"github.com/zatekoja/bookingengine/pkg/retry"
)

// Collection names
const (
	CollectionProperty    = "property"
	CollectionRoomType    = "roomtype"
	CollectionReservation = "reservation"
)

// Collections lists every collection the booking engine writes to
var Collections = []string{CollectionProperty, CollectionRoomType, CollectionReservation}

var (
	// ErrDocumentNotFound is returned when no document matches
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an ID is not a valid ObjectID hex string
	ErrInvalidID = errors.New("invalid document id")
)

// Client represents a MongoDB document store client
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to MongoDB with exponential backoff retry
func NewClient(ctx context.Context, cfg *config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	var client *mongo.Client
	err := retry.Do(ctx, retry.StartupConfig(), "mongodb connect", func(ctx context.Context) error {
		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB after retries: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("Successfully connected to MongoDB")
	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the underlying database handle
func (c *Client) Database() *mongo.Database {
	return c.db
}

// DatabaseName returns the configured database name
func (c *Client) DatabaseName() string {
	return c.db.Name()
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Ping verifies the connection to MongoDB
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// ListCollectionNames lists the collections of the database
func (c *Client) ListCollectionNames(ctx context.Context) ([]string, error) {
	return c.db.ListCollectionNames(ctx, bson.D{})
}

// InsertDocument inserts doc into collection and returns the generated ID
func (c *Client) InsertDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	result, err := c.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return InsertedIDString(result.InsertedID), nil
}

// FindDocuments decodes every document of collection matching filter into results,
// which must be a pointer to a slice
func (c *Client) FindDocuments(ctx context.Context, collection string, filter interface{}, results interface{}) error {
	if filter == nil {
		filter = bson.D{}
	}
	cursor, err := c.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// FindDocumentByID decodes the document with the given hex ObjectID into result
func (c *Client) FindDocumentByID(ctx context.Context, collection, id string, result interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	err = c.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s by id: %w", collection, err)
	}
	return nil
}

// InsertedIDString renders an inserted _id as a string
func InsertedIDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
