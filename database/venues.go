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

type VenueStore struct {
	col *mongo.Collection
}

func (s *VenueStore) Insert(ctx context.Context, venue *model.Venue) error {
	_, err := s.col.InsertOne(ctx, venue)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Venue name already exists", bson.M{"name": venue.Name})
	}
	return err
}

func (s *VenueStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	var venue model.Venue
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Venue not found")
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *VenueStore) Find(ctx context.Context) ([]model.Venue, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	venues := []model.Venue{}
	if err := cur.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (s *VenueStore) Update(ctx context.Context, id primitive.ObjectID, patch model.VenuePatch) (*model.Venue, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if patch.City != nil {
		set["city"] = *patch.City
	}
	if patch.State != nil {
		set["state"] = *patch.State
	}
	if patch.PostalCode != nil {
		set["postalCode"] = *patch.PostalCode
	}
	if patch.Country != nil {
		set["country"] = *patch.Country
	}
	if patch.Longitude != nil {
		set["longitude"] = *patch.Longitude
	}
	if patch.Latitude != nil {
		set["latitude"] = *patch.Latitude
	}
	if patch.Capacity != nil {
		set["capacity"] = *patch.Capacity
	}

	var venue model.Venue
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Venue not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperror.Conflict("Venue name already exists", nil)
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *VenueStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Venue not found")
	}
	return nil
}
