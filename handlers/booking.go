package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/errors"
	"booking-platform/middleware"
	"booking-platform/model"
	"booking-platform/service"
)

func (h *Handler) ListBookings(c *fiber.Ctx) error {
	filter := model.BookingFilter{Status: c.Query("status")}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid date filter, expected YYYY-MM-DD: %v", err))
		}
		filter.Date = &date
	}

	bookings, err := h.Bookings.List(c.Context(), filter)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d bookings fetched", len(bookings)), bookings)
}

func (h *Handler) MyBookings(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	bookings, err := h.Bookings.ListForUser(c.Context(), userID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d bookings fetched", len(bookings)), bookings)
}

func (h *Handler) BookingByReference(c *fiber.Ctx) error {
	booking, err := h.Bookings.GetByReference(c.Context(), c.Params("reference"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Booking fetched", booking)
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	booking, err := h.Bookings.Get(c.Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Booking fetched", booking)
}

type createBookingRequest struct {
	EventID     string `json:"eventId" validate:"required"`
	SeatsBooked int64  `json:"seatsBooked" validate:"required,min=1"`
	TicketType  string `json:"ticketType"`
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(createBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid eventId: %s", req.EventID), "Invalid ID format")
	}

	booking, err := h.Bookings.Create(c.Context(), userID, service.CreateBookingInput{
		EventID:     eventID,
		SeatsBooked: req.SeatsBooked,
		TicketType:  req.TicketType,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "Booking confirmed", booking)
}

type updateBookingRequest struct {
	TicketType *string `json:"ticketType"`
	Status     *string `json:"status"`
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}

	booking, err := h.Bookings.Update(c.Context(), userID, id, model.BookingPatch{
		TicketType: req.TicketType,
		Status:     req.Status,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Booking updated", booking)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	if err := h.Bookings.Delete(c.Context(), userID, id); err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Booking deleted", nil)
}

func (h *Handler) BookingsByEvent(c *fiber.Ctx) error {
	eventID, err := parseObjectID(c, "eventId")
	if err != nil {
		return errors.Respond(c, err)
	}

	bookings, err := h.Bookings.ListForEvent(c.Context(), eventID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d bookings fetched", len(bookings)), bookings)
}
