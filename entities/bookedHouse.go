package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseSnapshot is the copy of a listing's fields frozen into a booking.
// Deleting or editing the listing afterwards does not touch the snapshot.
type HouseSnapshot struct {
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Bedrooms         int    `json:"bedrooms"`
	Bathrooms        int    `json:"bathrooms"`
	RoomSize         int    `json:"roomSize"`
	Picture          string `json:"picture"`
	AvailabilityDate string `json:"availabilityDate"`
	RentPerMonth     int    `json:"rentPerMonth"`
	PhoneNumber      string `json:"phoneNumber"`
	Description      string `json:"description"`
}

// BookedHouse records a renter booking a house. Name, Email and PhoneNumber
// belong to the renter; House is the listing snapshot at booking time.
type BookedHouse struct {
	ID          string        `gorm:"type:text;primaryKey" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Email       string        `gorm:"index;not null" json:"email"`
	PhoneNumber string        `gorm:"not null" json:"phoneNumber"`
	House       HouseSnapshot `gorm:"embedded;embeddedPrefix:house_" json:"house"`
	CreatedAt   string        `json:"created_at"`
}

func (b *BookedHouse) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
