// Package store defines the collection boundary: one interface per
// collection, sentinel errors, and the external-id parse step. Production uses
// the mongodb adapters; tests use the memory adapters.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentwheels/rentwheels/internal/models"
)

var (
	// ErrNotFound reports a lookup that matched no document.
	ErrNotFound = errors.New("document not found")

	// ErrMalformedID reports an external id that cannot be parsed into an
	// ObjectID. Callers must not treat it as a storage failure.
	ErrMalformedID = errors.New("malformed id")
)

// ParseID converts an externally supplied hex id into an ObjectID, failing
// explicitly instead of letting the driver error surface raw.
func ParseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return objID, nil
}

type UserStore interface {
	// FindByEmail returns ErrNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Insert returns the generated id as a hex string.
	Insert(ctx context.Context, user models.User) (string, error)
}

type CarStore interface {
	// List returns cars ascending by postedAt, optionally filtered by
	// providerEmail ("" means all).
	List(ctx context.Context, providerEmail string) ([]models.Car, error)
	// Featured returns at most limit cars, ascending by postedAt.
	Featured(ctx context.Context, limit int) ([]models.Car, error)
	FindByID(ctx context.Context, id string) (models.Car, error)
	Insert(ctx context.Context, car models.Car) (string, error)
	// Update merges fields into the car document and reports how many
	// documents were modified (0 covers both "no such id" and "no-op
	// update").
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	// Delete reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type BookingStore interface {
	// ListForParticipant returns bookings where email matches either
	// userEmail or providerEmail.
	ListForParticipant(ctx context.Context, email string) ([]models.Booking, error)
	// ListByProduct returns bookings for a car id, descending by rentPrice.
	ListByProduct(ctx context.Context, productID string) ([]models.Booking, error)
	Insert(ctx context.Context, booking models.Booking) (string, error)
	Delete(ctx context.Context, id string) (bool, error)
}
