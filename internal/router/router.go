package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/handlers"
	"github.com/rentwheels/rentwheels/internal/identity"
	"github.com/rentwheels/rentwheels/internal/middleware"
)

// Setup registers every route with its guard assignment. The mapping is the
// whole contract of this package: which endpoints are public and which sit
// behind the auth guard must not drift.
func Setup(app *fiber.App, verifier identity.Verifier,
	users *handlers.UserHandler, cars *handlers.CarHandler, bookings *handlers.BookingHandler) {

	guard := middleware.AuthGuard(verifier)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Rent Wheels server is running")
	})

	// Users
	app.Get("/users", guard, users.ListUsers)
	app.Post("/users", users.CreateUser)

	// Cars. The literal /cars/... routes are registered before /cars/:id so
	// "provider" and "bookings" are not swallowed as ids.
	app.Get("/cars", cars.ListCars)
	app.Get("/featured-cars", cars.FeaturedCars)
	app.Get("/cars/provider/:email", cars.CarsByProvider)
	app.Get("/cars/bookings/:productId", bookings.BookingsByProduct)
	app.Get("/cars/:id", cars.GetCar)
	app.Post("/cars", guard, cars.CreateCar)
	app.Patch("/cars/:id", guard, cars.UpdateCar)
	app.Delete("/cars/:id", guard, cars.DeleteCar)

	// Bookings. Deletion is intentionally unguarded: anyone holding a booking
	// id may delete it. Kept for behavioral parity; tighten to
	// participant-only if that contract is ever dropped.
	app.Get("/bookings", guard, bookings.ListBookings)
	app.Post("/bookings", guard, bookings.CreateBooking)
	app.Delete("/bookings/:id", bookings.DeleteBooking)
}
