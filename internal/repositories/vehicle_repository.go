package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

// VehicleFilter carries the equality predicates pushed to the store.
// Anything beyond equality (price bounds) is filtered by the service
// after retrieval.
type VehicleFilter struct {
	Type string
	City string
}

type VehicleRepository interface {
	Insert(ctx context.Context, v *db_models.Vehicle) error
	FindByID(ctx context.Context, id string) (*db_models.Vehicle, error)
	ListByHost(ctx context.Context, hostID string) ([]db_models.Vehicle, error)
	Search(ctx context.Context, filter VehicleFilter) ([]db_models.Vehicle, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Insert(ctx context.Context, v *db_models.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepository) FindByID(ctx context.Context, id string) (*db_models.Vehicle, error) {
	var v db_models.Vehicle
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepository) ListByHost(ctx context.Context, hostID string) ([]db_models.Vehicle, error) {
	var vehicles []db_models.Vehicle
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Search(ctx context.Context, filter VehicleFilter) ([]db_models.Vehicle, error) {
	q := r.db.WithContext(ctx).Where("is_listed = ?", true)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}

	var vehicles []db_models.Vehicle
	err := q.Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Vehicle{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Vehicle{}, "id = ?", id).Error
}
