package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func staticRoles(roles map[string]string) RoleLookup {
	return func(_ context.Context, email string) (string, error) {
		role, ok := roles[email]
		if !ok {
			return "", errors.New("user not found")
		}
		return role, nil
	}
}

func TestCanListUsers(t *testing.T) {
	lookup := staticRoles(map[string]string{
		"admin@rentwheels.io": "admin",
		"bob@example.com":     "",
	})

	t.Run("admin allowed", func(t *testing.T) {
		assert.NoError(t, CanListUsers(context.Background(), "admin@rentwheels.io", lookup))
	})

	t.Run("ordinary user forbidden", func(t *testing.T) {
		err := CanListUsers(context.Background(), "bob@example.com", lookup)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown user fails closed", func(t *testing.T) {
		err := CanListUsers(context.Background(), "ghost@example.com", lookup)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCanMutateCar(t *testing.T) {
	assert.NoError(t, CanMutateCar("bob@example.com"))
	assert.ErrorIs(t, CanMutateCar(""), ErrForbidden)
}

func TestCanCreateBooking(t *testing.T) {
	assert.NoError(t, CanCreateBooking("bob@example.com", "bob@example.com"))
	assert.ErrorIs(t, CanCreateBooking("bob@example.com", "alice@example.com"), ErrForbidden)
	assert.ErrorIs(t, CanCreateBooking("", ""), ErrForbidden)
}

func TestCanListBookings(t *testing.T) {
	assert.NoError(t, CanListBookings("bob@example.com", "bob@example.com"))
	assert.ErrorIs(t, CanListBookings("bob@example.com", "alice@example.com"), ErrForbidden)
	assert.ErrorIs(t, CanListBookings("bob@example.com", ""), ErrForbidden)
}
