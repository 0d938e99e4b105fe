// Package policy holds the per-resource access rules. Every function is a
// pure decision: it never touches the request or the response, only the
// verified identity and the operation's inputs.
package policy

import (
	"context"
	"errors"

	"github.com/rentwheels/rentwheels/internal/models"
)

// ErrForbidden is returned for a valid identity lacking the required role or
// ownership. Handlers map it to 403 with the fixed "forbidden access" body.
var ErrForbidden = errors.New("forbidden access")

// RoleLookup resolves a verified email to that user's stored role. It is kept
// as a function value so the store behind it stays swappable (and cacheable).
type RoleLookup func(ctx context.Context, email string) (string, error)

// CanListUsers permits the full user listing to admins only. The role comes
// from the requester's own user document, not the token; a missing document
// fails closed.
func CanListUsers(ctx context.Context, identityEmail string, lookup RoleLookup) error {
	role, err := lookup(ctx, identityEmail)
	if err != nil {
		return ErrForbidden
	}
	if role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// CanMutateCar permits car create/update/delete to any verified identity.
// Ownership scoping to the car's providerEmail would be the stricter rule;
// kept at authenticated-only for parity with existing behavior.
func CanMutateCar(identityEmail string) error {
	if identityEmail == "" {
		return ErrForbidden
	}
	return nil
}

// CanCreateBooking permits a booking only when the renter books for
// themselves.
func CanCreateBooking(identityEmail, userEmail string) error {
	if identityEmail == "" || userEmail != identityEmail {
		return ErrForbidden
	}
	return nil
}

// CanListBookings permits the participant listing only for the caller's own
// email. The result set is then filtered by participant membership at the
// store, not here.
func CanListBookings(identityEmail, requestedEmail string) error {
	if requestedEmail == "" || requestedEmail != identityEmail {
		return ErrForbidden
	}
	return nil
}
