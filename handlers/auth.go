package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-platform/errors"
	"booking-platform/middleware"
	"booking-platform/model"
	"booking-platform/service"
)

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	AdminSecret string `json:"adminSecret"`
}

func (req registerRequest) input() service.RegisterInput {
	return service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	req := new(registerRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	user, err := h.Users.Register(c.Context(), req.input())
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "User registered", user)
}

func (h *Handler) RegisterAdmin(c *fiber.Ctx) error {
	req := new(registerRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	user, err := h.Users.RegisterAdmin(c.Context(), req.input(), req.AdminSecret)
	if err != nil {
		return errors.Respond(c, err)
	}
	return created(c, "Admin registered", user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	req := new(loginRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable credentials: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	token, user, err := h.Users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Success login", fiber.Map{"token": token, "user": user})
}

func (h *Handler) VerifyAuth(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	user, err := h.Users.Get(c.Context(), userID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Authenticated", user)
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List(c.Context())
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "Users fetched", users)
}

type updateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

func (h *Handler) UpdateMe(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	req := new(updateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Invalid input data", validationDetails(err))
	}

	user, err := h.Users.Update(c.Context(), userID, model.UserPatch{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "User updated", user)
}

func (h *Handler) DeleteMe(c *fiber.Ctx) error {
	userID, _, err := middleware.Identity(c)
	if err != nil {
		return errors.Respond(c, err)
	}

	if err := h.Users.Delete(c.Context(), userID); err != nil {
		return errors.Respond(c, err)
	}
	return ok(c, "User deleted", nil)
}
