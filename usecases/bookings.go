package usecases

import (
	"context"
	"errors"

	"rental-server/entities"
	"rental-server/repositories"

	"gorm.io/gorm"
)

// MaxBookingsPerRenter caps concurrent bookings per renter email.
const MaxBookingsPerRenter = 2

// BookingNotifier pushes booking events to connected house owners.
type BookingNotifier interface {
	BookingCreated(ownerID string, booking *entities.BookedHouse)
}

type BookingUseCase struct {
	BookingRepo repositories.BookedHouseRepository
	Notifier    BookingNotifier
}

func NewBookingUseCase(bookingRepo repositories.BookedHouseRepository, notifier BookingNotifier) *BookingUseCase {
	return &BookingUseCase{
		BookingRepo: bookingRepo,
		Notifier:    notifier,
	}
}

// CreateBooking persists a booking for the calling renter, enforcing the
// per-email limit atomically in the store.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, renterEmail string, booking *entities.BookedHouse) error {
	if booking.Email == "" {
		booking.Email = renterEmail
	}
	if booking.Email != renterEmail {
		return ErrForbidden
	}
	if booking.Name == "" {
		return errors.New("name is required")
	}
	if booking.PhoneNumber == "" {
		return errors.New("phoneNumber is required")
	}
	if booking.House.Name == "" {
		return errors.New("house is required")
	}

	if err := uc.BookingRepo.CreateWithLimit(ctx, booking, MaxBookingsPerRenter); err != nil {
		return err
	}

	if uc.Notifier != nil && booking.House.UserID != "" {
		uc.Notifier.BookingCreated(booking.House.UserID, booking)
	}
	return nil
}

// GetBookingsByOwner retrieves bookings whose house snapshot belongs to the
// caller. Owners may only query their own id.
func (uc *BookingUseCase) GetBookingsByOwner(ctx context.Context, callerID, ownerID string) ([]entities.BookedHouse, error) {
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}
	if ownerID != callerID {
		return nil, ErrForbidden
	}
	return uc.BookingRepo.GetByOwnerID(ctx, ownerID)
}

// GetBookingsByRenter retrieves the caller's own bookings.
func (uc *BookingUseCase) GetBookingsByRenter(ctx context.Context, callerEmail, email string) ([]entities.BookedHouse, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if email != callerEmail {
		return nil, ErrForbidden
	}
	return uc.BookingRepo.GetByRenterEmail(ctx, email)
}

// DeleteBooking cancels the booking with the given id and returns it.
// A missing id yields (nil, nil); only the booking's renter may cancel.
func (uc *BookingUseCase) DeleteBooking(ctx context.Context, callerEmail, id string) (*entities.BookedHouse, error) {
	if id == "" {
		return nil, errors.New("booking id is required")
	}

	existing, err := uc.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if existing.Email != callerEmail {
		return nil, ErrForbidden
	}

	if err := uc.BookingRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
