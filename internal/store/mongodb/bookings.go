package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentwheels/rentwheels/internal/models"
	"github.com/rentwheels/rentwheels/internal/store"
)

type BookingStore struct {
	collection *mongo.Collection
}

func NewBookingStore(db *mongo.Database) *BookingStore {
	return &BookingStore{collection: db.Collection("bookings")}
}

func (s *BookingStore) ListForParticipant(ctx context.Context, email string) ([]models.Booking, error) {
	filter := bson.M{"$or": []bson.M{
		{"providerEmail": email},
		{"userEmail": email},
	}}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decoding bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingStore) ListByProduct(ctx context.Context, productID string) ([]models.Booking, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"product": productID},
		options.Find().SetSort(bson.D{{Key: "rentPrice", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing bookings by product: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decoding bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingStore) Insert(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("inserting booking: %w", err)
	}
	return booking.ID.Hex(), nil
}

func (s *BookingStore) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return false, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("deleting booking: %w", err)
	}
	return result.DeletedCount > 0, nil
}
