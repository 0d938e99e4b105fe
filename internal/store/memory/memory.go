// Package memory provides in-memory store adapters with the same semantics as
// the mongodb adapters (id parsing included). They back the handler tests.
package memory

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentwheels/rentwheels/internal/models"
	"github.com/rentwheels/rentwheels/internal/store"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[string]models.User{}}
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *UserStore) Insert(_ context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

type CarStore struct {
	mu   sync.RWMutex
	cars map[string]models.Car
}

func NewCarStore() *CarStore {
	return &CarStore{cars: map[string]models.Car{}}
}

func (s *CarStore) List(_ context.Context, providerEmail string) ([]models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cars := []models.Car{}
	for _, car := range s.cars {
		if providerEmail == "" || car.ProviderEmail == providerEmail {
			cars = append(cars, car)
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].PostedAt.Before(cars[j].PostedAt) })
	return cars, nil
}

func (s *CarStore) Featured(ctx context.Context, limit int) ([]models.Car, error) {
	cars, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(cars) > limit {
		cars = cars[:limit]
	}
	return cars, nil
}

func (s *CarStore) FindByID(_ context.Context, id string) (models.Car, error) {
	if _, err := store.ParseID(id); err != nil {
		return models.Car{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	car, ok := s.cars[id]
	if !ok {
		return models.Car{}, store.ErrNotFound
	}
	return car, nil
}

func (s *CarStore) Insert(_ context.Context, car models.Car) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	s.cars[car.ID.Hex()] = car
	return car.ID.Hex(), nil
}

// Update mirrors $set semantics: any differing key counts as a modification,
// including fields the Car struct does not model (which $set would add to the
// document). Novel field values are not retained by the struct-backed double,
// but the modified count matches what Mongo would report.
func (s *CarStore) Update(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	if _, err := store.ParseID(id); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	car, ok := s.cars[id]
	if !ok {
		return 0, nil
	}

	encoded, err := json.Marshal(car)
	if err != nil {
		return 0, err
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return 0, err
	}

	modified := false
	for key, value := range fields {
		if !reflect.DeepEqual(doc[key], value) {
			doc[key] = value
			modified = true
		}
	}
	if !modified {
		return 0, nil
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}
	var updated models.Car
	if err := json.Unmarshal(merged, &updated); err != nil {
		return 0, err
	}
	updated.ID = car.ID
	s.cars[id] = updated
	return 1, nil
}

func (s *CarStore) Delete(_ context.Context, id string) (bool, error) {
	if _, err := store.ParseID(id); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cars[id]; !ok {
		return false, nil
	}
	delete(s.cars, id)
	return true, nil
}

type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: map[string]models.Booking{}}
}

func (s *BookingStore) ListForParticipant(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := []models.Booking{}
	for _, booking := range s.bookings {
		if booking.ProviderEmail == email || booking.UserEmail == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *BookingStore) ListByProduct(_ context.Context, productID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := []models.Booking{}
	for _, booking := range s.bookings {
		if booking.Product == productID {
			bookings = append(bookings, booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].RentPrice > bookings[j].RentPrice })
	return bookings, nil
}

func (s *BookingStore) Insert(_ context.Context, booking models.Booking) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	s.bookings[booking.ID.Hex()] = booking
	return booking.ID.Hex(), nil
}

func (s *BookingStore) Delete(_ context.Context, id string) (bool, error) {
	if _, err := store.ParseID(id); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return false, nil
	}
	delete(s.bookings, id)
	return true, nil
}

// Len reports the number of stored bookings.
func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
