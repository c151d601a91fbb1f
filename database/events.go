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

// EventStore owns the events collection, including the seat inventory
// counters that booking creation and cancellation contend on.
type EventStore struct {
	col *mongo.Collection
}

func (s *EventStore) Insert(ctx context.Context, event *model.Event) error {
	_, err := s.col.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Event title already exists", bson.M{"title": event.Title})
	}
	return err
}

func (s *EventStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event model.Event
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) Find(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.CategoryID != nil {
		filter["categoryId"] = *f.CategoryID
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	cur, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startDateTime", Value: 1}}))
	if err != nil {
		return nil, err
	}

	events := []model.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) Update(ctx context.Context, id primitive.ObjectID, patch model.EventPatch) (*model.Event, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if patch.StartDateTime != nil {
		set["startDateTime"] = *patch.StartDateTime
	}
	if patch.EndDateTime != nil {
		set["endDateTime"] = *patch.EndDateTime
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.VenueID != nil {
		set["venueId"] = *patch.VenueID
	}
	if patch.TotalCapacity != nil {
		set["totalCapacity"] = *patch.TotalCapacity
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.EventType != nil {
		set["eventType"] = *patch.EventType
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	if patch.Tickets != nil {
		set["tickets"] = *patch.Tickets
	}

	var event model.Event
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Event not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperror.Conflict("Event title already exists", nil)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*model.Event, error) {
	return s.Update(ctx, id, model.EventPatch{Status: &status})
}

func (s *EventStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Event not found")
	}
	return nil
}

// DecrementSeats atomically takes seats from the inventory, guarded by a
// sufficient-availability condition evaluated inside a single update. A nil
// event with nil error means the guard failed (not enough seats at the exact
// moment of execution); the caller decides how to report it.
func (s *EventStore) DecrementSeats(ctx context.Context, id primitive.ObjectID, seats int64) (*model.Event, error) {
	var event model.Event
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "availableSeats": bson.M{"$gte": seats}},
		bson.M{"$inc": bson.M{"availableSeats": -seats}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// IncrementSeats hands seats back unconditionally (cancellation, deletion,
// or compensation after a failed ledger write).
func (s *EventStore) IncrementSeats(ctx context.Context, id primitive.ObjectID, seats int64) error {
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"availableSeats": seats}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Event not found")
	}
	return nil
}

// CompleteExpired flips published events whose end has passed to completed.
func (s *EventStore) CompleteExpired(ctx context.Context, now time.Time) error {
	_, err := s.col.UpdateMany(ctx,
		bson.M{"status": model.EventStatusPublished, "endDateTime": bson.M{"$lt": now}},
		bson.M{"$set": bson.M{"status": model.EventStatusCompleted, "updatedAt": now}},
	)
	return err
}

// FindEndedIDs lists ids of events whose end has passed, whatever their status.
func (s *EventStore) FindEndedIDs(ctx context.Context, now time.Time) ([]primitive.ObjectID, error) {
	cur, err := s.col.Find(ctx,
		bson.M{"endDateTime": bson.M{"$lt": now}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
