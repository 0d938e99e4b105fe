package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/middleware"
	"github.com/rentwheels/rentwheels/internal/models"
	"github.com/rentwheels/rentwheels/internal/policy"
	"github.com/rentwheels/rentwheels/internal/store"
)

const featuredLimit = 6

type CarHandler struct {
	cars store.CarStore
}

func NewCarHandler(cars store.CarStore) *CarHandler {
	return &CarHandler{cars: cars}
}

// ListCars returns all listings ascending by postedAt, optionally filtered by
// ?email= (the provider). Public.
func (h *CarHandler) ListCars(c *fiber.Ctx) error {
	cars, err := h.cars.List(c.Context(), c.Query("email"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(cars)
}

// FeaturedCars returns at most 6 listings, same ascending postedAt order as
// the general listing. Public.
func (h *CarHandler) FeaturedCars(c *fiber.Ctx) error {
	cars, err := h.cars.Featured(c.Context(), featuredLimit)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(cars)
}

// GetCar returns a single listing, or a null body when the id matches
// nothing. Public.
func (h *CarHandler) GetCar(c *fiber.Ctx) error {
	car, err := h.cars.FindByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(nil)
	}
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(car)
}

// CreateCar inserts a new listing. The provider email always comes from the
// verified identity, never from the payload.
func (h *CarHandler) CreateCar(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)
	if err := policy.CanMutateCar(email); err != nil {
		return forbidden(c)
	}

	var car models.Car
	if err := c.BodyParser(&car); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	car.ProviderEmail = email
	if car.PostedAt.IsZero() {
		car.PostedAt = time.Now()
	}

	id, err := h.cars.Insert(c.Context(), car)
	if err != nil {
		return storageError(c, err)
	}
	return insertAck(c, id)
}

// UpdateCar merges a partial document into a listing. Zero modified documents
// means either an unknown id or a no-op payload; callers cannot tell these
// apart.
func (h *CarHandler) UpdateCar(c *fiber.Ctx) error {
	if err := policy.CanMutateCar(middleware.TokenEmail(c)); err != nil {
		return forbidden(c)
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	// providerEmail is immutable after creation.
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "providerEmail")

	// Validate the id before the empty-payload shortcut so a malformed id
	// always maps to 400, whatever the body contained.
	if _, err := store.ParseID(c.Params("id")); err != nil {
		return storageError(c, err)
	}

	if len(fields) == 0 {
		// An empty merge can never modify anything; skip the storage call,
		// which would reject an empty $set.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Car not found or no change"})
	}

	modified, err := h.cars.Update(c.Context(), c.Params("id"), fields)
	if err != nil {
		return storageError(c, err)
	}
	if modified == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Car not found or no change"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "modifiedCount": modified})
}

// DeleteCar removes a listing; success reports whether a document was
// actually removed.
func (h *CarHandler) DeleteCar(c *fiber.Ctx) error {
	if err := policy.CanMutateCar(middleware.TokenEmail(c)); err != nil {
		return forbidden(c)
	}

	deleted, err := h.cars.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"success": deleted})
}

// CarsByProvider returns a provider's listings. Public.
func (h *CarHandler) CarsByProvider(c *fiber.Ctx) error {
	cars, err := h.cars.List(c.Context(), c.Params("email"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(cars)
}
