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

type CategoryStore struct {
	col *mongo.Collection
}

func (s *CategoryStore) Insert(ctx context.Context, category *model.Category) error {
	_, err := s.col.InsertOne(ctx, category)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Category name already exists", bson.M{"name": category.Name})
	}
	return err
}

func (s *CategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryStore) Find(ctx context.Context) ([]model.Category, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	categories := []model.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Update(ctx context.Context, id primitive.ObjectID, patch model.CategoryPatch) (*model.Category, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	var category model.Category
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.NotFound("Category not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperror.Conflict("Category name already exists", nil)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}
