package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links a renter to a car listing. UserEmail is the renter and must
// match the verified identity of whoever created the booking. Product is a
// weak reference to a Car id; dangling references are tolerated.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	ProviderEmail string             `bson:"providerEmail" json:"providerEmail"`
	Product       string             `bson:"product" json:"product"`
	RentPrice     float64            `bson:"rentPrice,omitempty" json:"rentPrice,omitempty"`
	BookedAt      time.Time          `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
}
