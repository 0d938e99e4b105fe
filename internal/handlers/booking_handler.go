package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/middleware"
	"github.com/rentwheels/rentwheels/internal/models"
	"github.com/rentwheels/rentwheels/internal/policy"
	"github.com/rentwheels/rentwheels/internal/store"
)

type BookingHandler struct {
	bookings store.BookingStore
}

func NewBookingHandler(bookings store.BookingStore) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// ListBookings returns the caller's bookings, as renter or provider. The
// ?email= parameter must match the verified identity; the store then filters
// on participant membership (either side of the booking).
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if err := policy.CanListBookings(middleware.TokenEmail(c), email); err != nil {
		return forbidden(c)
	}

	bookings, err := h.bookings.ListForParticipant(c.Context(), email)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(bookings)
}

// CreateBooking inserts a booking. Renters can only book for themselves.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if err := policy.CanCreateBooking(middleware.TokenEmail(c), booking.UserEmail); err != nil {
		return forbidden(c)
	}

	if booking.BookedAt.IsZero() {
		booking.BookedAt = time.Now()
	}
	id, err := h.bookings.Insert(c.Context(), booking)
	if err != nil {
		return storageError(c, err)
	}
	return insertAck(c, id)
}

// DeleteBooking removes a booking by id. Deliberately unguarded for parity
// with existing behavior; see the route table.
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	deleted, err := h.bookings.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": deleted})
}

// BookingsByProduct returns a car's bookings, highest rentPrice first.
// Public.
func (h *BookingHandler) BookingsByProduct(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListByProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(bookings)
}
