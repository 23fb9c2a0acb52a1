package main

import (
	"log"
	"time"

	"github.com/Maxito7/booking_gateway/internal/application"
	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/email"
	handlers "github.com/Maxito7/booking_gateway/internal/interfaces/http"
	"github.com/Maxito7/booking_gateway/internal/mews"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Upstream clients
	connector := mews.NewConnector(cfg)
	bookingEngine := mews.NewBookingEngine(cfg)

	// Rooms
	roomService := application.NewRoomService(bookingEngine, cfg)
	roomHandler := handlers.NewRoomHandler(roomService)

	// Rates
	rateService := application.NewRateService(connector, cfg)
	rateHandler := handlers.NewRateHandler(rateService)

	// Reservations
	reservationService := application.NewReservationService(connector, cfg)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// Email client
	var mailer application.ConfirmationMailer
	if cfg.SMTPHost != "" {
		emailClient, err := email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
		} else {
			mailer = emailClient
		}
	}

	// Booking workflow
	draftStore := application.NewDraftStore(2 * time.Hour)
	bookingWorkflow := application.NewBookingWorkflow(draftStore, roomService, rateService, reservationService, mailer)
	bookingHandler := handlers.NewBookingHandler(bookingWorkflow)

	// Commit writes twice upstream without idempotency keys, keep it behind
	// a limiter.
	commitLimiter := application.NewRateLimiter(time.Minute, 10)
	limitCommits := func(c *fiber.Ctx) error {
		if !commitLimiter.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many booking attempts, slow down"})
		}
		return c.Next()
	}

	api := app.Group("/api")

	rooms := api.Group("/rooms")
	rooms.Get("/", roomHandler.GetRooms)
	rooms.Get("/:id", roomHandler.GetRoomByID)

	api.Get("/rates", rateHandler.GetRates)

	api.Post("/customers", reservationHandler.CreateCustomer)

	reservations := api.Group("/reservations")
	reservations.Get("/", reservationHandler.GetReservations)
	reservations.Post("/", reservationHandler.CreateReservation)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.StartDraft)
	bookings.Get("/:id", bookingHandler.GetDraft)
	bookings.Post("/:id/dates", bookingHandler.SubmitDates)
	bookings.Post("/:id/rate", bookingHandler.SelectRate)
	bookings.Post("/:id/details", bookingHandler.SubmitDetails)
	bookings.Post("/:id/back", bookingHandler.Back)
	bookings.Post("/:id/commit", limitCommits, bookingHandler.Commit)
	bookings.Post("/:id/reset", bookingHandler.Reset)
	bookings.Delete("/:id", bookingHandler.Discard)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
