package repositories

import (
	"context"
	"time"

	"rental-server/db"
	"rental-server/entities"
)

type housePgRepository struct {
	db db.Database
}

func NewHousePgRepository(database db.Database) HouseRepository {
	return &housePgRepository{db: database}
}

func (r *housePgRepository) Create(ctx context.Context, house *entities.House) error {
	return r.db.GetDB().WithContext(ctx).Create(house).Error
}

func (r *housePgRepository) GetByID(ctx context.Context, id string) (*entities.House, error) {
	var house entities.House
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&house).Error
	if err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *housePgRepository) GetAll(ctx context.Context) ([]entities.House, error) {
	var houses []entities.House
	err := r.db.GetDB().WithContext(ctx).Find(&houses).Error
	return houses, err
}

func (r *housePgRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]entities.House, error) {
	var houses []entities.House
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at DESC").Find(&houses).Error
	return houses, err
}

func (r *housePgRepository) Update(ctx context.Context, house *entities.House) error {
	house.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().WithContext(ctx).Save(house).Error
}

func (r *housePgRepository) Delete(ctx context.Context, id string) error {
	return r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(&entities.House{}).Error
}
