package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"

	TicketTypeGeneral = "General"
)

type Booking struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BookingReference     string             `json:"bookingReference" bson:"bookingReference"`
	UserID               primitive.ObjectID `json:"userId" bson:"userId"`
	EventID              primitive.ObjectID `json:"eventId" bson:"eventId"`
	TicketType           string             `json:"ticketType" bson:"ticketType"`
	SeatsBooked          int64              `json:"seatsBooked" bson:"seatsBooked"`
	TotalAmount          float64            `json:"totalAmount" bson:"totalAmount"`
	Status               string             `json:"status" bson:"status"`
	BookingDate          time.Time          `json:"bookingDate" bson:"bookingDate"`
	CancellationAllowed  bool               `json:"cancellationAllowed" bson:"cancellationAllowed"`
	CancellationDeadline time.Time          `json:"cancellationDeadline" bson:"cancellationDeadline"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	Status  string
	Date    *time.Time
	UserID  *primitive.ObjectID
	EventID *primitive.ObjectID
}

// BookingPatch carries the only fields a booking owner may change. Protected
// fields (amount, reference, seats, user and event references) have no
// representation here, so attempts to modify them are dropped silently.
type BookingPatch struct {
	TicketType *string
	Status     *string
}
