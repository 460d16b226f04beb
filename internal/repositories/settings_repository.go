package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, or nil when none exists
	// yet (callers fall back to the default fee schedule).
	Get(ctx context.Context) (*db_models.PlatformSettings, error)
	Upsert(ctx context.Context, s *db_models.PlatformSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*db_models.PlatformSettings, error) {
	var s db_models.PlatformSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s *db_models.PlatformSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.PlatformSettings
		err := tx.Order("created_at ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(s).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Updates(map[string]interface{}{
			"service_fee_threshold":   s.ServiceFeeThreshold,
			"above_threshold_percent": s.AboveThresholdPercent,
			"below_threshold_percent": s.BelowThresholdPercent,
		}).Error
	})
}
