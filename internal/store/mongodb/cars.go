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

type CarStore struct {
	collection *mongo.Collection
}

func NewCarStore(db *mongo.Database) *CarStore {
	return &CarStore{collection: db.Collection("cars")}
}

func (s *CarStore) List(ctx context.Context, providerEmail string) ([]models.Car, error) {
	filter := bson.M{}
	if providerEmail != "" {
		filter["providerEmail"] = providerEmail
	}

	cursor, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "postedAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := []models.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("decoding cars: %w", err)
	}
	return cars, nil
}

func (s *CarStore) Featured(ctx context.Context, limit int) ([]models.Car, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "postedAt", Value: 1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("listing featured cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := []models.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("decoding cars: %w", err)
	}
	return cars, nil
}

func (s *CarStore) FindByID(ctx context.Context, id string) (models.Car, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return models.Car{}, err
	}

	var car models.Car
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&car)
	if err == mongo.ErrNoDocuments {
		return models.Car{}, store.ErrNotFound
	}
	if err != nil {
		return models.Car{}, fmt.Errorf("finding car: %w", err)
	}
	return car, nil
}

func (s *CarStore) Insert(ctx context.Context, car models.Car) (string, error) {
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, car); err != nil {
		return "", fmt.Errorf("inserting car: %w", err)
	}
	return car.ID.Hex(), nil
}

func (s *CarStore) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("updating car: %w", err)
	}
	return result.ModifiedCount, nil
}

func (s *CarStore) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return false, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("deleting car: %w", err)
	}
	return result.DeletedCount > 0, nil
}
