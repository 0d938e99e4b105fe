package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rentwheels/rentwheels/internal/config"
	"github.com/rentwheels/rentwheels/internal/db"
	"github.com/rentwheels/rentwheels/internal/handlers"
	"github.com/rentwheels/rentwheels/internal/identity"
	"github.com/rentwheels/rentwheels/internal/router"
	"github.com/rentwheels/rentwheels/internal/store/mongodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Fail fast: no listener until the database is reachable.
	database, err := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	log.Println("Connected to MongoDB")

	verifier, err := identity.NewTokenVerifier(cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	userHandler := handlers.NewUserHandler(mongodb.NewUserStore(database))
	carHandler := handlers.NewCarHandler(mongodb.NewCarStore(database))
	bookingHandler := handlers.NewBookingHandler(mongodb.NewBookingStore(database))

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	router.Setup(app, verifier, userHandler, carHandler, bookingHandler)

	log.Fatal(app.Listen(":" + cfg.Port))
}
