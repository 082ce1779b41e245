package repositories

import (
	"context"
	"errors"

	"rental-server/entities"
)

// ErrBookingLimit is returned by CreateWithLimit when the renter already
// holds the maximum number of bookings.
var ErrBookingLimit = errors.New("booking limit reached")

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
}

type HouseRepository interface {
	Create(ctx context.Context, house *entities.House) error
	GetByID(ctx context.Context, id string) (*entities.House, error)
	GetAll(ctx context.Context) ([]entities.House, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]entities.House, error)
	Update(ctx context.Context, house *entities.House) error
	Delete(ctx context.Context, id string) error
}

type BookedHouseRepository interface {
	// CreateWithLimit atomically rejects the booking with ErrBookingLimit
	// when the renter email already has max records.
	CreateWithLimit(ctx context.Context, booking *entities.BookedHouse, max int64) error
	GetByID(ctx context.Context, id string) (*entities.BookedHouse, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]entities.BookedHouse, error)
	GetByRenterEmail(ctx context.Context, email string) ([]entities.BookedHouse, error)
	Delete(ctx context.Context, id string) error
}
