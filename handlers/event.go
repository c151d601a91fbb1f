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

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	filter := model.EventFilter{Status: c.Query("status")}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return errors.RaiseError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Invalid categoryId: %s", raw), "Invalid ID format")
		}
		filter.CategoryID = &categoryID
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	events, err := h.Events.List(c.Context(), filter)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d events fetched", len(events)), events)
}

func (h *Handler) FeaturedEvents(c *fiber.Ctx) error {
	events, err := h.Events.Featured(c.Context())
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d events fetched", len(events)), events)
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	event, err := h.Events.Get(c.Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Event fetched", event)
}

type createEventRequest struct {
	Title         string             `json:"title" validate:"required,min=2"`
	Description   string             `json:"description" validate:"required"`
	Images        []string           `json:"images"`
	StartDateTime time.Time          `json:"startDateTime" validate:"required"`
	EndDateTime   time.Time          `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
	CategoryID    string             `json:"categoryId" validate:"required"`
	VenueID       string             `json:"venueId" validate:"required"`
	TotalCapacity int64              `json:"totalCapacity" validate:"min=0"`
	Price         float64            `json:"price" validate:"min=0"`
	EventType     string             `json:"eventType"`
	Status        string             `json:"status"`
	Featured      bool               `json:"featured"`
	Tickets       []model.TicketTier `json:"tickets"`
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	creatorID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(createEventRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid categoryId: %s", req.CategoryID), "Invalid ID format")
	}
	venueID, err := primitive.ObjectIDFromHex(req.VenueID)
	if err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Invalid venueId: %s", req.VenueID), "Invalid ID format")
	}

	event, err := h.Events.Create(c.Context(), creatorID, service.CreateEventInput{
		Title:         req.Title,
		Description:   req.Description,
		Images:        req.Images,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		CategoryID:    categoryID,
		VenueID:       venueID,
		TotalCapacity: req.TotalCapacity,
		Price:         req.Price,
		EventType:     req.EventType,
		Status:        req.Status,
		Featured:      req.Featured,
		Tickets:       req.Tickets,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "Event created", event)
}

type updateEventRequest struct {
	Title         *string             `json:"title" validate:"omitempty,min=2"`
	Description   *string             `json:"description"`
	Images        *[]string           `json:"images"`
	StartDateTime *time.Time          `json:"startDateTime"`
	EndDateTime   *time.Time          `json:"endDateTime"`
	CategoryID    *string             `json:"categoryId"`
	VenueID       *string             `json:"venueId"`
	TotalCapacity *int64              `json:"totalCapacity" validate:"omitempty,min=0"`
	Price         *float64            `json:"price" validate:"omitempty,min=0"`
	EventType     *string             `json:"eventType"`
	Status        *string             `json:"status"`
	Featured      *bool               `json:"featured"`
	Tickets       *[]model.TicketTier `json:"tickets"`
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateEventRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	patch := model.EventPatch{
		Title:         req.Title,
		Description:   req.Description,
		Images:        req.Images,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		TotalCapacity: req.TotalCapacity,
		Price:         req.Price,
		EventType:     req.EventType,
		Status:        req.Status,
		Featured:      req.Featured,
		Tickets:       req.Tickets,
	}
	if req.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return errors.RaiseError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Invalid categoryId: %s", *req.CategoryID), "Invalid ID format")
		}
		patch.CategoryID = &categoryID
	}
	if req.VenueID != nil {
		venueID, err := primitive.ObjectIDFromHex(*req.VenueID)
		if err != nil {
			return errors.RaiseError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Invalid venueId: %s", *req.VenueID), "Invalid ID format")
		}
		patch.VenueID = &venueID
	}

	event, err := h.Events.Update(c.Context(), id, patch)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Event updated", event)
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	if err := h.Events.Delete(c.Context(), id); err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Event deleted", nil)
}

type updateEventStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateEventStatus(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateEventStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status parameters: %v", err))
	}

	event, err := h.Events.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Event status updated", event)
}
