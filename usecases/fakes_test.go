package usecases

import (
	"context"
	"sync"

	"rental-server/entities"
	"rental-server/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the gorm implementations closely
// enough for usecase tests: missing records surface gorm.ErrRecordNotFound
// and CreateWithLimit enforces the cap under a lock.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User // email -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type fakeHouseRepo struct {
	mu     sync.Mutex
	houses map[string]*entities.House
}

func newFakeHouseRepo() *fakeHouseRepo {
	return &fakeHouseRepo{houses: make(map[string]*entities.House)}
}

func (r *fakeHouseRepo) Create(ctx context.Context, house *entities.House) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if house.ID == "" {
		house.ID = uuid.New().String()
	}
	r.houses[house.ID] = house
	return nil
}

func (r *fakeHouseRepo) GetByID(ctx context.Context, id string) (*entities.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	house, ok := r.houses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *house
	return &copy, nil
}

func (r *fakeHouseRepo) GetAll(ctx context.Context) ([]entities.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	houses := make([]entities.House, 0, len(r.houses))
	for _, h := range r.houses {
		houses = append(houses, *h)
	}
	return houses, nil
}

func (r *fakeHouseRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]entities.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var houses []entities.House
	for _, h := range r.houses {
		if h.UserID == ownerID {
			houses = append(houses, *h)
		}
	}
	return houses, nil
}

func (r *fakeHouseRepo) Update(ctx context.Context, house *entities.House) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *house
	r.houses[house.ID] = &copy
	return nil
}

func (r *fakeHouseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.houses, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entities.BookedHouse
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entities.BookedHouse)}
}

func (r *fakeBookingRepo) CreateWithLimit(ctx context.Context, booking *entities.BookedHouse, max int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, b := range r.bookings {
		if b.Email == booking.Email {
			count++
		}
	}
	if count >= max {
		return repositories.ErrBookingLimit
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entities.BookedHouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *booking
	return &copy, nil
}

func (r *fakeBookingRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]entities.BookedHouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []entities.BookedHouse
	for _, b := range r.bookings {
		if b.House.UserID == ownerID {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) GetByRenterEmail(ctx context.Context, email string) ([]entities.BookedHouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []entities.BookedHouse
	for _, b := range r.bookings {
		if b.Email == email {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
