package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/apperror"
	"booking-platform/model"
)

// cancellationWindow is how long before the event start cancellations close.
const cancellationWindow = 24 * time.Hour

// BookingService is the booking workflow engine. It owns the seat-inventory
// choreography: conditional decrement on create, unconditional increment on
// cancellation/deletion, and compensation when the ledger write fails after
// seats were already taken.
type BookingService struct {
	events     EventStore
	bookings   BookingStore
	reconciler *Reconciler
	notifier   Notifier
	now        func() time.Time
}

func NewBookingService(events EventStore, bookings BookingStore, reconciler *Reconciler) *BookingService {
	return &BookingService{
		events:     events,
		bookings:   bookings,
		reconciler: reconciler,
		now:        time.Now,
	}
}

// SetNotifier wires an optional lifecycle-event publisher.
func (s *BookingService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateBookingInput struct {
	EventID     primitive.ObjectID
	SeatsBooked int64
	TicketType  string
}

// Create reserves seats against a published event and records the booking.
//
// Ordering matters here: the ticket type is resolved before the seat
// decrement so a bad tier never needs compensation. Only a ledger-write
// failure after a successful decrement triggers the compensating increment.
func (s *BookingService) Create(ctx context.Context, userID primitive.ObjectID, in CreateBookingInput) (*model.Booking, error) {
	if in.SeatsBooked < 1 {
		return nil, apperror.Validation("Seats booked cannot be less than 1", nil)
	}

	ticketType := in.TicketType
	if ticketType == "" {
		ticketType = model.TicketTypeGeneral
	}

	event, err := s.events.FindByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventStatusPublished {
		return nil, apperror.Validation("Event is not available for booking", nil)
	}

	multiplier, ok := event.TierMultiplier(ticketType)
	if !ok {
		return nil, apperror.Validation(
			fmt.Sprintf("Ticket type '%s' is not available for this event", ticketType), nil)
	}

	// Single conditional update: take the seats only if enough remain at the
	// exact moment of execution. Two racing requests cannot both win the
	// same seats.
	updated, err := s.events.DecrementSeats(ctx, event.ID, in.SeatsBooked)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.Validation("Not enough seats available",
			map[string]interface{}{"available": event.AvailableSeats})
	}

	now := s.now()
	deadline := event.StartDateTime.Add(-cancellationWindow)

	booking := &model.Booking{
		ID:                   primitive.NewObjectID(),
		BookingReference:     NewBookingReference(),
		UserID:               userID,
		EventID:              event.ID,
		TicketType:           ticketType,
		SeatsBooked:          in.SeatsBooked,
		TotalAmount:          event.Price * multiplier * float64(in.SeatsBooked),
		Status:               model.BookingStatusConfirmed,
		BookingDate:          now,
		CancellationAllowed:  now.Before(deadline),
		CancellationDeadline: deadline,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		// The seats were already taken; hand them back. If even that fails
		// the inventory leaks seats until corrected operationally, so log
		// loudly rather than masking the original failure.
		if incErr := s.events.IncrementSeats(ctx, event.ID, in.SeatsBooked); incErr != nil {
			logrus.WithFields(logrus.Fields{
				"eventId": event.ID.Hex(),
				"seats":   in.SeatsBooked,
				"error":   incErr.Error(),
			}).Error("seat compensation failed after ledger write error")
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingCreated(booking)
	}
	return booking, nil
}

// Update applies an owner's patch. A transition into cancelled releases the
// seats back to the event, subject to the cancellation window fixed at
// creation time. Cancelling an already-cancelled booking changes nothing in
// the inventory.
func (s *BookingService) Update(ctx context.Context, userID, bookingID primitive.ObjectID, patch model.BookingPatch) (*model.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperror.Authorization("You are not authorized to update this booking")
	}

	if patch.Status != nil && !model.IsValidBookingStatus(*patch.Status) {
		return nil, apperror.Validation(fmt.Sprintf("Invalid booking status '%s'", *patch.Status), nil)
	}

	cancelling := patch.Status != nil &&
		*patch.Status == model.BookingStatusCancelled &&
		booking.Status != model.BookingStatusCancelled

	if cancelling {
		if !booking.CancellationAllowed {
			return nil, apperror.Validation("This booking is non-refundable and cannot be cancelled", nil)
		}
		if !s.now().Before(booking.CancellationDeadline) {
			return nil, apperror.Validation("The cancellation deadline for this booking has passed", nil)
		}
		if err := s.events.IncrementSeats(ctx, booking.EventID, booking.SeatsBooked); err != nil {
			return nil, err
		}
	}

	updated, err := s.bookings.Update(ctx, bookingID, patch)
	if err != nil {
		return nil, err
	}

	if cancelling && s.notifier != nil {
		s.notifier.BookingCancelled(updated)
	}
	return updated, nil
}

// Delete removes the ledger record, releasing its seats first unless the
// booking was already cancelled (those seats went back at cancellation time).
func (s *BookingService) Delete(ctx context.Context, userID, bookingID primitive.ObjectID) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return apperror.Authorization("You are not authorized to delete this booking")
	}

	if booking.Status != model.BookingStatusCancelled {
		if err := s.events.IncrementSeats(ctx, booking.EventID, booking.SeatsBooked); err != nil {
			return err
		}
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.BookingDeleted(booking)
	}
	return nil
}

func (s *BookingService) List(ctx context.Context, f model.BookingFilter) ([]model.Booking, error) {
	s.reconciler.Run(ctx)

	bookings, err := s.bookings.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperror.NotFound("No bookings found")
	}
	return bookings, nil
}

func (s *BookingService) Get(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	s.reconciler.Run(ctx)
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	s.reconciler.Run(ctx)
	return s.bookings.FindByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
}

func (s *BookingService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Booking, error) {
	s.reconciler.Run(ctx)

	bookings, err := s.bookings.Find(ctx, model.BookingFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperror.NotFound("You have no bookings yet")
	}
	return bookings, nil
}

func (s *BookingService) ListForEvent(ctx context.Context, eventID primitive.ObjectID) ([]model.Booking, error) {
	s.reconciler.Run(ctx)

	bookings, err := s.bookings.Find(ctx, model.BookingFilter{EventID: &eventID})
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperror.NotFound("No bookings found for this event")
	}
	return bookings, nil
}
