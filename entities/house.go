package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// House is a rental listing owned by a house-owner account.
type House struct {
	ID               string `gorm:"type:text;primaryKey" json:"id"`
	UserID           string `gorm:"index" json:"userId"`
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
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func (h *House) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.CreatedAt = time.Now().Format(time.RFC3339)
	h.UpdatedAt = h.CreatedAt
	return
}
