package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booking-platform/apperror"
	"booking-platform/model"
)

// BookingStore is the ledger: one document per successful reservation. The
// unique index on bookingReference is the authoritative uniqueness guarantee
// behind the reference generator.
type BookingStore struct {
	col *mongo.Collection
}

func (s *BookingStore) Insert(ctx context.Context, booking *model.Booking) error {
	_, err := s.col.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Booking reference already exists", bson.M{"bookingReference": booking.BookingReference})
	}
	return err
}

func (s *BookingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Booking not found")
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	var booking model.Booking
	err := s.col.FindOne(ctx, bson.M{"bookingReference": reference}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Booking not found")
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) Find(ctx context.Context, f model.BookingFilter) ([]model.Booking, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Date != nil {
		dayStart := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, f.Date.Location())
		filter["createdAt"] = bson.M{"$gte": dayStart, "$lt": dayStart.Add(24 * time.Hour)}
	}
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	if f.EventID != nil {
		filter["eventId"] = *f.EventID
	}

	cur, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	bookings := []model.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) Update(ctx context.Context, id primitive.ObjectID, patch model.BookingPatch) (*model.Booking, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.TicketType != nil {
		set["ticketType"] = *patch.TicketType
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	var booking model.Booking
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Booking not found")
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Booking not found")
	}
	return nil
}

// CompleteForEvents flips confirmed bookings of the given events to completed.
func (s *BookingStore) CompleteForEvents(ctx context.Context, eventIDs []primitive.ObjectID) error {
	if len(eventIDs) == 0 {
		return nil
	}
	_, err := s.col.UpdateMany(ctx,
		bson.M{"eventId": bson.M{"$in": eventIDs}, "status": model.BookingStatusConfirmed},
		bson.M{"$set": bson.M{"status": model.BookingStatusCompleted, "updatedAt": time.Now()}},
	)
	return err
}
