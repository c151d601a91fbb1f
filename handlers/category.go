package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-platform/errors"
	"booking-platform/model"
)

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Categories.List(c.Context())
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, fmt.Sprintf("%d categories fetched", len(categories)), categories)
}

func (h *Handler) GetCategory(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	category, err := h.Categories.Get(c.Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Category fetched", category)
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	req := new(createCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable category parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	category, err := h.Categories.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "Category created", category)
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
}

func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable category parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	category, err := h.Categories.Update(c.Context(), id, model.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Category updated", category)
}

func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}

	if err := h.Categories.Delete(c.Context(), id); err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Category deleted", nil)
}
