package usecases

import (
	"context"
	"errors"

	"rental-server/entities"
	"rental-server/repositories"

	"gorm.io/gorm"
)

type HouseUseCase struct {
	HouseRepo repositories.HouseRepository
}

func NewHouseUseCase(houseRepo repositories.HouseRepository) *HouseUseCase {
	return &HouseUseCase{HouseRepo: houseRepo}
}

// CreateHouse persists a new listing owned by ownerID.
func (uc *HouseUseCase) CreateHouse(ctx context.Context, ownerID string, house *entities.House) error {
	house.UserID = ownerID
	if err := validateHouse(house); err != nil {
		return err
	}
	return uc.HouseRepo.Create(ctx, house)
}

// GetAllHouses retrieves every listing. Public, unfiltered.
func (uc *HouseUseCase) GetAllHouses(ctx context.Context) ([]entities.House, error) {
	return uc.HouseRepo.GetAll(ctx)
}

// GetHousesByOwner retrieves the caller's own listings. Owners may only
// query their own id.
func (uc *HouseUseCase) GetHousesByOwner(ctx context.Context, callerID, ownerID string) ([]entities.House, error) {
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}
	if ownerID != callerID {
		return nil, ErrForbidden
	}
	return uc.HouseRepo.GetByOwnerID(ctx, ownerID)
}

// UpdateHouse replaces the mutable fields of the listing with the given id.
// A missing id yields (nil, nil); only the owner may update.
func (uc *HouseUseCase) UpdateHouse(ctx context.Context, callerID string, house *entities.House) (*entities.House, error) {
	if house.ID == "" {
		return nil, errors.New("house id is required")
	}

	existing, err := uc.HouseRepo.GetByID(ctx, house.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	existing.Name = house.Name
	existing.Address = house.Address
	existing.City = house.City
	existing.Bedrooms = house.Bedrooms
	existing.Bathrooms = house.Bathrooms
	existing.RoomSize = house.RoomSize
	existing.Picture = house.Picture
	existing.AvailabilityDate = house.AvailabilityDate
	existing.RentPerMonth = house.RentPerMonth
	existing.PhoneNumber = house.PhoneNumber
	existing.Description = house.Description

	if err := uc.HouseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteHouse removes the listing with the given id and returns it.
// A missing id yields (nil, nil); only the owner may delete.
func (uc *HouseUseCase) DeleteHouse(ctx context.Context, callerID, id string) (*entities.House, error) {
	if id == "" {
		return nil, errors.New("house id is required")
	}

	existing, err := uc.HouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if err := uc.HouseRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func validateHouse(house *entities.House) error {
	if house.Name == "" {
		return errors.New("name is required")
	}
	if house.Address == "" {
		return errors.New("address is required")
	}
	if house.City == "" {
		return errors.New("city is required")
	}
	if house.Bedrooms == 0 {
		return errors.New("bedrooms is required")
	}
	if house.Bathrooms == 0 {
		return errors.New("bathrooms is required")
	}
	if house.RoomSize == 0 {
		return errors.New("roomSize is required")
	}
	if house.Picture == "" {
		return errors.New("picture is required")
	}
	if house.AvailabilityDate == "" {
		return errors.New("availabilityDate is required")
	}
	if house.RentPerMonth == 0 {
		return errors.New("rentPerMonth is required")
	}
	if house.PhoneNumber == "" {
		return errors.New("phoneNumber is required")
	}
	if house.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
