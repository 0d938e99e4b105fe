package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car is a rental listing. ProviderEmail is set from the creator's verified
// identity and never changes afterwards.
type Car struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Model         string             `bson:"model,omitempty" json:"model,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	RentPrice     float64            `bson:"rentPrice,omitempty" json:"rentPrice,omitempty"`
	Availability  string             `bson:"availability,omitempty" json:"availability,omitempty"`
	ProviderEmail string             `bson:"providerEmail" json:"providerEmail"`
	PostedAt      time.Time          `bson:"postedAt" json:"postedAt"`
}
