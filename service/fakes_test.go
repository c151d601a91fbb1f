package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/apperror"
	"booking-platform/model"
)

// In-memory store fakes. The event fake keeps the seat decrement atomic under
// its mutex so concurrency tests exercise the same guarantee the database
// gives via the conditional update.

type fakeEventStore struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*model.Event

	decrementCalls int
	incrementCalls int
	incrementErr   error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[primitive.ObjectID]*model.Event{}}
}

func (f *fakeEventStore) put(event *model.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *event
	f.events[event.ID] = &clone
}

func (f *fakeEventStore) get(id primitive.ObjectID) *model.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event, ok := f.events[id]; ok {
		clone := *event
		return &clone
	}
	return nil
}

func (f *fakeEventStore) Insert(_ context.Context, event *model.Event) error {
	f.put(event)
	return nil
}

func (f *fakeEventStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Event, error) {
	if event := f.get(id); event != nil {
		return event, nil
	}
	return nil, apperror.NotFound("Event not found")
}

func (f *fakeEventStore) Find(_ context.Context, filter model.EventFilter) ([]model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Event
	for _, event := range f.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.CategoryID != nil && event.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Featured != nil && event.Featured != *filter.Featured {
			continue
		}
		out = append(out, *event)
	}
	return out, nil
}

func (f *fakeEventStore) Update(_ context.Context, id primitive.ObjectID, patch model.EventPatch) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, apperror.NotFound("Event not found")
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}
	if patch.Featured != nil {
		event.Featured = *patch.Featured
	}
	clone := *event
	return &clone, nil
}

func (f *fakeEventStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, apperror.NotFound("Event not found")
	}
	event.Status = status
	clone := *event
	return &clone, nil
}

func (f *fakeEventStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return apperror.NotFound("Event not found")
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventStore) DecrementSeats(_ context.Context, id primitive.ObjectID, seats int64) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decrementCalls++
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	if event.AvailableSeats < seats {
		return nil, nil
	}
	event.AvailableSeats -= seats
	clone := *event
	return &clone, nil
}

func (f *fakeEventStore) IncrementSeats(_ context.Context, id primitive.ObjectID, seats int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrementCalls++
	if f.incrementErr != nil {
		return f.incrementErr
	}
	event, ok := f.events[id]
	if !ok {
		return apperror.NotFound("Event not found")
	}
	event.AvailableSeats += seats
	return nil
}

func (f *fakeEventStore) CompleteExpired(_ context.Context, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, event := range f.events {
		if event.Status == model.EventStatusPublished && event.EndDateTime.Before(now) {
			event.Status = model.EventStatusCompleted
		}
	}
	return nil
}

func (f *fakeEventStore) FindEndedIDs(_ context.Context, now time.Time) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []primitive.ObjectID
	for id, event := range f.events {
		if event.EndDateTime.Before(now) {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]*model.Booking

	insertErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[primitive.ObjectID]*model.Booking{}}
}

func (f *fakeBookingStore) get(id primitive.ObjectID) *model.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking, ok := f.bookings[id]; ok {
		clone := *booking
		return &clone
	}
	return nil
}

func (f *fakeBookingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBookingStore) Insert(_ context.Context, booking *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.bookings {
		if existing.BookingReference == booking.BookingReference {
			return apperror.Conflict("Booking reference already exists", nil)
		}
	}
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Booking, error) {
	if booking := f.get(id); booking != nil {
		return booking, nil
	}
	return nil, apperror.NotFound("Booking not found")
}

func (f *fakeBookingStore) FindByReference(_ context.Context, reference string) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.BookingReference == reference {
			clone := *booking
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("Booking not found")
}

func (f *fakeBookingStore) Find(_ context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Booking
	for _, booking := range f.bookings {
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		if filter.UserID != nil && booking.UserID != *filter.UserID {
			continue
		}
		if filter.EventID != nil && booking.EventID != *filter.EventID {
			continue
		}
		if filter.Date != nil {
			day := filter.Date.Truncate(24 * time.Hour)
			if booking.BookingDate.Before(day) || !booking.BookingDate.Before(day.Add(24*time.Hour)) {
				continue
			}
		}
		out = append(out, *booking)
	}
	return out, nil
}

func (f *fakeBookingStore) Update(_ context.Context, id primitive.ObjectID, patch model.BookingPatch) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, apperror.NotFound("Booking not found")
	}
	if patch.TicketType != nil {
		booking.TicketType = *patch.TicketType
	}
	if patch.Status != nil {
		booking.Status = *patch.Status
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return apperror.NotFound("Booking not found")
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) CompleteForEvents(_ context.Context, eventIDs []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ended := make(map[primitive.ObjectID]bool, len(eventIDs))
	for _, id := range eventIDs {
		ended[id] = true
	}
	for _, booking := range f.bookings {
		if booking.Status == model.BookingStatusConfirmed && ended[booking.EventID] {
			booking.Status = model.BookingStatusCompleted
		}
	}
	return nil
}

type fakeVenueStore struct {
	mu     sync.Mutex
	venues map[primitive.ObjectID]*model.Venue
}

func newFakeVenueStore() *fakeVenueStore {
	return &fakeVenueStore{venues: map[primitive.ObjectID]*model.Venue{}}
}

func (f *fakeVenueStore) Insert(_ context.Context, venue *model.Venue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *venue
	f.venues[venue.ID] = &clone
	return nil
}

func (f *fakeVenueStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if venue, ok := f.venues[id]; ok {
		clone := *venue
		return &clone, nil
	}
	return nil, apperror.NotFound("Venue not found")
}

func (f *fakeVenueStore) Find(_ context.Context) ([]model.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Venue
	for _, venue := range f.venues {
		out = append(out, *venue)
	}
	return out, nil
}

func (f *fakeVenueStore) Update(_ context.Context, id primitive.ObjectID, patch model.VenuePatch) (*model.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	venue, ok := f.venues[id]
	if !ok {
		return nil, apperror.NotFound("Venue not found")
	}
	if patch.Name != nil {
		venue.Name = *patch.Name
	}
	if patch.Capacity != nil {
		venue.Capacity = *patch.Capacity
	}
	clone := *venue
	return &clone, nil
}

func (f *fakeVenueStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[id]; !ok {
		return apperror.NotFound("Venue not found")
	}
	delete(f.venues, id)
	return nil
}

type fakeCategoryStore struct {
	mu         sync.Mutex
	categories map[primitive.ObjectID]*model.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[primitive.ObjectID]*model.Category{}}
}

func (f *fakeCategoryStore) Insert(_ context.Context, category *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category, ok := f.categories[id]; ok {
		clone := *category
		return &clone, nil
	}
	return nil, apperror.NotFound("Category not found")
}

func (f *fakeCategoryStore) Find(_ context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, id primitive.ObjectID, patch model.CategoryPatch) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, apperror.NotFound("Category not found")
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	clone := *category
	return &clone, nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return apperror.NotFound("Category not found")
	}
	delete(f.categories, id)
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*model.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperror.Conflict("Email already registered", nil)
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperror.NotFound("User not found")
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("User not found")
}

func (f *fakeUserStore) Find(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, id primitive.ObjectID, patch model.UserPatch) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return apperror.NotFound("User not found")
	}
	delete(f.users, id)
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	created   []string
	cancelled []string
	deleted   []string
}

func (f *fakeNotifier) BookingCreated(booking *model.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, booking.BookingReference)
}

func (f *fakeNotifier) BookingCancelled(booking *model.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, booking.BookingReference)
}

func (f *fakeNotifier) BookingDeleted(booking *model.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, booking.BookingReference)
}
