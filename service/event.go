package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/apperror"
	"booking-platform/model"
)

type EventService struct {
	events     EventStore
	venues     VenueStore
	categories CategoryStore
	reconciler *Reconciler
}

func NewEventService(events EventStore, venues VenueStore, categories CategoryStore, reconciler *Reconciler) *EventService {
	return &EventService{
		events:     events,
		venues:     venues,
		categories: categories,
		reconciler: reconciler,
	}
}

type CreateEventInput struct {
	Title         string
	Description   string
	Images        []string
	StartDateTime time.Time
	EndDateTime   time.Time
	CategoryID    primitive.ObjectID
	VenueID       primitive.ObjectID
	TotalCapacity int64
	Price         float64
	EventType     string
	Status        string
	Featured      bool
	Tickets       []model.TicketTier
}

func (s *EventService) Create(ctx context.Context, creatorID primitive.ObjectID, in CreateEventInput) (*model.Event, error) {
	if _, err := s.venues.FindByID(ctx, in.VenueID); err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.EventStatusDraft
	}
	if status != model.EventStatusDraft && status != model.EventStatusPublished {
		return nil, apperror.Validation("New events must be created as draft or published", nil)
	}

	eventType := in.EventType
	if eventType == "" {
		eventType = model.EventTypeInPerson
	}
	if !model.IsValidEventType(eventType) {
		return nil, apperror.Validation(fmt.Sprintf("Invalid event type '%s'", eventType), nil)
	}

	for _, tier := range in.Tickets {
		if tier.Multiplier < 0 {
			return nil, apperror.Validation("Ticket tier multiplier cannot be negative", nil)
		}
	}

	now := time.Now()
	event := &model.Event{
		ID:             primitive.NewObjectID(),
		Title:          strings.ToLower(strings.TrimSpace(in.Title)),
		Description:    in.Description,
		Images:         in.Images,
		StartDateTime:  in.StartDateTime,
		EndDateTime:    in.EndDateTime,
		CategoryID:     in.CategoryID,
		VenueID:        in.VenueID,
		TotalCapacity:  in.TotalCapacity,
		AvailableSeats: in.TotalCapacity,
		Price:          in.Price,
		EventType:      eventType,
		Status:         status,
		Featured:       in.Featured,
		CreatedBy:      creatorID,
		Tickets:        in.Tickets,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id primitive.ObjectID, patch model.EventPatch) (*model.Event, error) {
	if patch.VenueID != nil {
		if _, err := s.venues.FindByID(ctx, *patch.VenueID); err != nil {
			return nil, err
		}
	}
	if patch.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil && !model.IsValidEventStatus(*patch.Status) {
		return nil, apperror.Validation(fmt.Sprintf("Invalid event status '%s'", *patch.Status), nil)
	}
	if patch.EventType != nil && !model.IsValidEventType(*patch.EventType) {
		return nil, apperror.Validation(fmt.Sprintf("Invalid event type '%s'", *patch.EventType), nil)
	}
	if patch.Title != nil {
		title := strings.ToLower(strings.TrimSpace(*patch.Title))
		patch.Title = &title
	}

	return s.events.Update(ctx, id, patch)
}

func (s *EventService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*model.Event, error) {
	if status == "" {
		return nil, apperror.Validation("Please provide a status to update", nil)
	}
	if !model.IsValidEventStatus(status) {
		return nil, apperror.Validation(fmt.Sprintf("Invalid event status '%s'", status), nil)
	}
	return s.events.UpdateStatus(ctx, id, status)
}

func (s *EventService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.events.Delete(ctx, id)
}

func (s *EventService) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	s.reconciler.Run(ctx)
	return s.events.Find(ctx, f)
}

func (s *EventService) Featured(ctx context.Context) ([]model.Event, error) {
	featured := true
	return s.List(ctx, model.EventFilter{Featured: &featured})
}

func (s *EventService) Get(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	s.reconciler.Run(ctx)
	return s.events.FindByID(ctx, id)
}
