package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"booking-platform/cache"
	"booking-platform/config"
	"booking-platform/database"
	"booking-platform/handlers"
	"booking-platform/middleware"
	"booking-platform/notifier"
	"booking-platform/router"
	"booking-platform/service"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("cannot connect to the database")
	}
	defer db.Disconnect(context.Background())

	listCache := cache.New(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), cfg.CacheTTL)

	reconciler := service.NewReconciler(db.Events, db.Bookings)

	bookings := service.NewBookingService(db.Events, db.Bookings, reconciler)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := notifier.New(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logrus.WithError(err).Warn("kafka producer unavailable, booking notifications disabled")
		} else {
			defer producer.Close()
			bookings.SetNotifier(producer)
		}
	}

	users := service.NewUserService(db.Users, service.UserServiceConfig{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		AdminSecret: cfg.AdminSecret,
		BcryptCost:  cfg.BcryptCost,
	})

	h := &handlers.Handler{
		Users:      users,
		Events:     service.NewEventService(db.Events, db.Venues, db.Categories, reconciler),
		Venues:     service.NewVenueService(db.Venues, listCache),
		Categories: service.NewCategoryService(db.Categories, listCache),
		Bookings:   bookings,
	}

	app := fiber.New()
	router.SetupRoutes(app, h, middleware.Authorize(cfg.JWTSecret), middleware.RequireAdmin(users))

	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
