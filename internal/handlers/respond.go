package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/policy"
	"github.com/rentwheels/rentwheels/internal/store"
)

// forbidden is the fixed 403 body shared by every policy denial.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
}

// storageError maps store failures to client responses uniformly. Malformed
// ids are a caller mistake; everything else stays a generic 500 so internal
// error text never reaches clients.
func storageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrMalformedID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id format"})
	case errors.Is(err, policy.ErrForbidden):
		return forbidden(c)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}

// insertAck mirrors the driver's insert acknowledgment shape.
func insertAck(c *fiber.Ctx, id string) error {
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
