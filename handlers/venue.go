package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-platform/errors"
	"booking-platform/model"
	"booking-platform/service"
)

func (h *Handler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.Venues.List(c.Context())
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d venues fetched", len(venues)), venues)
}

func (h *Handler) GetVenue(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	venue, err := h.Venues.Get(c.Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Venue fetched", venue)
}

type createVenueRequest struct {
	Name       string   `json:"name" validate:"required,min=2"`
	Address    string   `json:"address" validate:"required"`
	Images     []string `json:"images"`
	City       string   `json:"city" validate:"required"`
	State      string   `json:"state" validate:"required"`
	PostalCode string   `json:"postalCode" validate:"required"`
	Country    string   `json:"country" validate:"required"`
	Longitude  float64  `json:"longitude"`
	Latitude   float64  `json:"latitude"`
	Capacity   int64    `json:"capacity" validate:"min=0"`
}

func (h *Handler) CreateVenue(c *fiber.Ctx) error {
	req := new(createVenueRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable venue parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	venue, err := h.Venues.Create(c.Context(), service.CreateVenueInput{
		Name:       req.Name,
		Address:    req.Address,
		Images:     req.Images,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Longitude:  req.Longitude,
		Latitude:   req.Latitude,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "Venue created", venue)
}

type updateVenueRequest struct {
	Name       *string   `json:"name" validate:"omitempty,min=2"`
	Address    *string   `json:"address"`
	Images     *[]string `json:"images"`
	City       *string   `json:"city"`
	State      *string   `json:"state"`
	PostalCode *string   `json:"postalCode"`
	Country    *string   `json:"country"`
	Longitude  *float64  `json:"longitude"`
	Latitude   *float64  `json:"latitude"`
	Capacity   *int64    `json:"capacity" validate:"omitempty,min=0"`
}

func (h *Handler) UpdateVenue(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateVenueRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable venue parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	venue, err := h.Venues.Update(c.Context(), id, model.VenuePatch{
		Name:       req.Name,
		Address:    req.Address,
		Images:     req.Images,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Longitude:  req.Longitude,
		Latitude:   req.Latitude,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Venue updated", venue)
}

func (h *Handler) DeleteVenue(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	if err := h.Venues.Delete(c.Context(), id); err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Venue deleted", nil)
}
