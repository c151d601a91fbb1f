package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/model"
)

// Store contracts consumed by the services; implemented by package database.
// Missing documents surface as apperror NotFound, uniqueness violations as
// apperror Conflict, so the services stay free of driver specifics.

type EventStore interface {
	Insert(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	Find(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.EventPatch) (*model.Event, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*model.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DecrementSeats performs the conditional, atomic seat take. It returns
	// (nil, nil) when the availability guard failed.
	DecrementSeats(ctx context.Context, id primitive.ObjectID, seats int64) (*model.Event, error)
	IncrementSeats(ctx context.Context, id primitive.ObjectID, seats int64) error

	CompleteExpired(ctx context.Context, now time.Time) error
	FindEndedIDs(ctx context.Context, now time.Time) ([]primitive.ObjectID, error)
}

type BookingStore interface {
	Insert(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)
	FindByReference(ctx context.Context, reference string) (*model.Booking, error)
	Find(ctx context.Context, f model.BookingFilter) ([]model.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.BookingPatch) (*model.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CompleteForEvents(ctx context.Context, eventIDs []primitive.ObjectID) error
}

type UserStore interface {
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Find(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VenueStore interface {
	Insert(ctx context.Context, venue *model.Venue) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Venue, error)
	Find(ctx context.Context) ([]model.Venue, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.VenuePatch) (*model.Venue, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CategoryStore interface {
	Insert(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	Find(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Notifier receives booking lifecycle notifications after the corresponding
// store mutation succeeded.
type Notifier interface {
	BookingCreated(booking *model.Booking)
	BookingCancelled(booking *model.Booking)
	BookingDeleted(booking *model.Booking)
}
