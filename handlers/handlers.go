package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/apperror"
	"booking-platform/service"
)

var validate = validator.New()

// Handler groups the thin HTTP controllers over the service layer.
type Handler struct {
	Users      *service.UserService
	Events     *service.EventService
	Venues     *service.VenueService
	Categories *service.CategoryService
	Bookings   *service.BookingService
}

func parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, apperror.Validation(
			fmt.Sprintf("Invalid %s: %s", param, c.Params(param)), "Invalid ID format")
	}
	return id, nil
}

func validationDetails(err error) interface{} {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	details := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, fmt.Sprintf("field '%s' failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
	}
	return details
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data})
}
