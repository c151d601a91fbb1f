package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"booking-platform/handlers"
)

// SetupRoutes wires the HTTP surface. The auth handler verifies bearer
// tokens, the admin handler additionally checks the requester's role.
func SetupRoutes(app *fiber.App, h *handlers.Handler, auth fiber.Handler, admin fiber.Handler) {
	api := app.Group("/", logger.New(), requestid.New())

	loginLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	})

	//Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", loginLimiter, h.Register)
	authGroup.Post("/adminRegister", loginLimiter, h.RegisterAdmin)
	authGroup.Post("/login", loginLimiter, h.Login)
	authGroup.Get("/verifyAuth", auth, h.VerifyAuth)
	authGroup.Get("/", auth, admin, h.ListUsers)
	authGroup.Put("/", auth, h.UpdateMe)
	authGroup.Delete("/", auth, h.DeleteMe)

	//Event
	event := api.Group("/events")
	event.Get("/", h.ListEvents)
	event.Get("/featured", h.FeaturedEvents)
	event.Get("/:id", h.GetEvent)
	event.Post("/", auth, admin, h.CreateEvent)
	event.Put("/:id", auth, admin, h.UpdateEvent)
	event.Patch("/:id/status", auth, admin, h.UpdateEventStatus)
	event.Delete("/:id", auth, admin, h.DeleteEvent)

	//Venue
	venue := api.Group("/venues")
	venue.Get("/", h.ListVenues)
	venue.Get("/:id", h.GetVenue)
	venue.Post("/", auth, admin, h.CreateVenue)
	venue.Put("/:id", auth, admin, h.UpdateVenue)
	venue.Delete("/:id", auth, admin, h.DeleteVenue)

	//Category
	category := api.Group("/categories")
	category.Get("/", h.ListCategories)
	category.Get("/:id", h.GetCategory)
	category.Post("/", auth, admin, h.CreateCategory)
	category.Put("/:id", auth, admin, h.UpdateCategory)
	category.Delete("/:id", auth, admin, h.DeleteCategory)

	//Booking
	booking := api.Group("/bookings", auth)
	booking.Get("/", admin, h.ListBookings)
	booking.Get("/my", h.MyBookings)
	booking.Get("/reference/:reference", h.BookingByReference)
	booking.Get("/event/:eventId", admin, h.BookingsByEvent)
	booking.Post("/", h.CreateBooking)
	booking.Get("/:id", h.GetBooking)
	booking.Put("/:id", h.UpdateBooking)
	booking.Delete("/:id", h.DeleteBooking)
}
