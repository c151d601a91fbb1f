package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/cache"
	"booking-platform/model"
)

const categoriesCacheKey = "categories:all"

type CategoryService struct {
	categories CategoryStore
	cache      *cache.Cache
}

func NewCategoryService(categories CategoryStore, c *cache.Cache) *CategoryService {
	return &CategoryService{categories: categories, cache: c}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*model.Category, error) {
	now := time.Now()
	category := &model.Category{
		ID:          primitive.NewObjectID(),
		Name:        strings.ToLower(strings.TrimSpace(name)),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, categoriesCacheKey)
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if s.cache.Get(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	categories, err := s.categories.Find(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, categoriesCacheKey, categories)
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, patch model.CategoryPatch) (*model.Category, error) {
	if patch.Name != nil {
		name := strings.ToLower(strings.TrimSpace(*patch.Name))
		patch.Name = &name
	}

	category, err := s.categories.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, categoriesCacheKey)
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, categoriesCacheKey)
	return nil
}
