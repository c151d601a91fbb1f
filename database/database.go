package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booking-platform/config"
)

// Database bundles the Mongo client with one store per collection.
type Database struct {
	client *mongo.Client

	Events     *EventStore
	Bookings   *BookingStore
	Users      *UserStore
	Venues     *VenueStore
	Categories *CategoryStore
}

func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("cannot create indexes: %w", err)
	}

	return &Database{
		client:     client,
		Events:     &EventStore{col: db.Collection("events")},
		Bookings:   &BookingStore{col: db.Collection("bookings")},
		Users:      &UserStore{col: db.Collection("users")},
		Venues:     &VenueStore{col: db.Collection("venues")},
		Categories: &CategoryStore{col: db.Collection("categories")},
	}, nil
}

func (d *Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	uniqueIndexes := map[string]string{
		"users":      "email",
		"events":     "title",
		"venues":     "name",
		"categories": "name",
		"bookings":   "bookingReference",
	}
	for collection, field := range uniqueIndexes {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	_, err := db.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "eventId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "eventId", Value: 1}}},
	})
	return err
}
