package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"

	EventTypeOnline   = "Online"
	EventTypeInPerson = "In-person"
	EventTypeHybrid   = "Hybrid"
)

// TicketTier is a named pricing multiplier applied to the event base price.
type TicketTier struct {
	Type        string  `json:"type" bson:"type"`
	Description string  `json:"description" bson:"description"`
	Multiplier  float64 `json:"multiplier" bson:"multiplier"`
}

type Event struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Images         []string           `json:"images" bson:"images"`
	StartDateTime  time.Time          `json:"startDateTime" bson:"startDateTime"`
	EndDateTime    time.Time          `json:"endDateTime" bson:"endDateTime"`
	CategoryID     primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	VenueID        primitive.ObjectID `json:"venueId" bson:"venueId"`
	TotalCapacity  int64              `json:"totalCapacity" bson:"totalCapacity"`
	AvailableSeats int64              `json:"availableSeats" bson:"availableSeats"`
	Price          float64            `json:"price" bson:"price"`
	EventType      string             `json:"eventType" bson:"eventType"`
	Status         string             `json:"status" bson:"status"`
	Featured       bool               `json:"featured" bson:"featured"`
	CreatedBy      primitive.ObjectID `json:"createdBy" bson:"createdBy,omitempty"`
	Tickets        []TicketTier       `json:"tickets" bson:"tickets"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DefaultTicketTiers applies when an event defines no tier list of its own.
var DefaultTicketTiers = []TicketTier{
	{Type: "General", Description: "Standard admission", Multiplier: 1},
	{Type: "VIP", Description: "Priority seating", Multiplier: 1.5},
	{Type: "VIP Gold", Description: "Priority seating and lounge access", Multiplier: 2},
	{Type: "VIP Platinum", Description: "Full hospitality package", Multiplier: 3},
}

// TierMultiplier resolves the price multiplier for a ticket type against the
// event tier list, falling back to the default set when the event has none.
func (e *Event) TierMultiplier(ticketType string) (float64, bool) {
	tiers := e.Tickets
	if len(tiers) == 0 {
		tiers = DefaultTicketTiers
	}
	for _, tier := range tiers {
		if tier.Type == ticketType {
			return tier.Multiplier, true
		}
	}
	return 0, false
}

func IsValidEventStatus(s string) bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

func IsValidEventType(s string) bool {
	switch s {
	case EventTypeOnline, EventTypeInPerson, EventTypeHybrid:
		return true
	}
	return false
}

// EventFilter narrows event list queries.
type EventFilter struct {
	Status     string
	CategoryID *primitive.ObjectID
	Featured   *bool
}

type EventPatch struct {
	Title         *string
	Description   *string
	Images        *[]string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	CategoryID    *primitive.ObjectID
	VenueID       *primitive.ObjectID
	TotalCapacity *int64
	Price         *float64
	EventType     *string
	Status        *string
	Featured      *bool
	Tickets       *[]TicketTier
}
