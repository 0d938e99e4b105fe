package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/middleware"
	"github.com/rentwheels/rentwheels/internal/models"
	"github.com/rentwheels/rentwheels/internal/policy"
	"github.com/rentwheels/rentwheels/internal/store"
)

type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// roleLookup resolves the requester's stored role from their own user
// document. Plugged into the policy so the lookup stays swappable.
func (h *UserHandler) roleLookup(ctx context.Context, email string) (string, error) {
	user, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// ListUsers returns every user account. Admin only.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	requester := middleware.TokenEmail(c)
	if err := policy.CanListUsers(c.Context(), requester, h.roleLookup); err != nil {
		return forbidden(c)
	}

	users, err := h.users.List(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(users)
}

// CreateUser registers a user. Re-registering an existing email is a no-op
// success, which is why this endpoint stays unguarded: it runs on first
// sign-in before the client has anything but the token.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	_, err := h.users.FindByEmail(c.Context(), user.Email)
	if err == nil {
		return c.JSON(fiber.Map{"message": "User already exists"})
	}
	if !errors.Is(err, store.ErrNotFound) {
		return storageError(c, err)
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	id, err := h.users.Insert(c.Context(), user)
	if err != nil {
		return storageError(c, err)
	}
	return insertAck(c, id)
}
