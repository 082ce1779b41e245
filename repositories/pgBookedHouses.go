package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"

	"gorm.io/gorm"
)

type bookedHousePgRepository struct {
	db db.Database
}

func NewBookedHousePgRepository(database db.Database) BookedHouseRepository {
	return &bookedHousePgRepository{db: database}
}

// CreateWithLimit counts and inserts inside one transaction while holding a
// per-email advisory lock, so concurrent bookings for the same renter
// serialize and the count stays accurate.
func (r *bookedHousePgRepository) CreateWithLimit(ctx context.Context, booking *entities.BookedHouse, max int64) error {
	return r.db.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", booking.Email).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&entities.BookedHouse{}).Where("email = ?", booking.Email).Count(&count).Error; err != nil {
			return err
		}
		if count >= max {
			return ErrBookingLimit
		}

		return tx.Create(booking).Error
	})
}

func (r *bookedHousePgRepository) GetByID(ctx context.Context, id string) (*entities.BookedHouse, error) {
	var booking entities.BookedHouse
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookedHousePgRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]entities.BookedHouse, error) {
	var bookings []entities.BookedHouse
	err := r.db.GetDB().WithContext(ctx).Where("house_user_id = ?", ownerID).Find(&bookings).Error
	return bookings, err
}

func (r *bookedHousePgRepository) GetByRenterEmail(ctx context.Context, email string) ([]entities.BookedHouse, error) {
	var bookings []entities.BookedHouse
	err := r.db.GetDB().WithContext(ctx).Where("email = ?", email).Find(&bookings).Error
	return bookings, err
}

func (r *bookedHousePgRepository) Delete(ctx context.Context, id string) error {
	return r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(&entities.BookedHouse{}).Error
}
