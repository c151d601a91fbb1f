package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/cache"
	"booking-platform/model"
)

const venuesCacheKey = "venues:all"

type VenueService struct {
	venues VenueStore
	cache  *cache.Cache
}

func NewVenueService(venues VenueStore, c *cache.Cache) *VenueService {
	return &VenueService{venues: venues, cache: c}
}

type CreateVenueInput struct {
	Name       string
	Address    string
	Images     []string
	City       string
	State      string
	PostalCode string
	Country    string
	Longitude  float64
	Latitude   float64
	Capacity   int64
}

func (s *VenueService) Create(ctx context.Context, in CreateVenueInput) (*model.Venue, error) {
	now := time.Now()
	venue := &model.Venue{
		ID:         primitive.NewObjectID(),
		Name:       in.Name,
		Address:    in.Address,
		Images:     in.Images,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Longitude:  in.Longitude,
		Latitude:   in.Latitude,
		Capacity:   in.Capacity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.venues.Insert(ctx, venue); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, venuesCacheKey)
	return venue, nil
}

func (s *VenueService) List(ctx context.Context) ([]model.Venue, error) {
	var venues []model.Venue
	if s.cache.Get(ctx, venuesCacheKey, &venues) {
		return venues, nil
	}

	venues, err := s.venues.Find(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, venuesCacheKey, venues)
	return venues, nil
}

func (s *VenueService) Get(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	return s.venues.FindByID(ctx, id)
}

func (s *VenueService) Update(ctx context.Context, id primitive.ObjectID, patch model.VenuePatch) (*model.Venue, error) {
	venue, err := s.venues.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, venuesCacheKey)
	return venue, nil
}

func (s *VenueService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, venuesCacheKey)
	return nil
}
