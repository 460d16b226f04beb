package services

import (
	"context"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type SettingsServiceInterface interface {
	// GetFeeSettings reads the schedule fresh on every call; it is never
	// cached because the fee is snapshotted onto bookings anyway.
	GetFeeSettings(ctx context.Context) (FeeSettings, error)
	GetSettings(ctx context.Context) (*db_models.PlatformSettings, error)
	UpdateSettings(ctx context.Context, request request_models.UpdateSettingsRequest) error
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetFeeSettings(ctx context.Context) (FeeSettings, error) {
	row, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return FeeSettings{}, utils.CollaboratorError(err)
	}
	if row == nil {
		return DefaultFeeSettings, nil
	}
	return FeeSettings{
		Threshold:    row.ServiceFeeThreshold,
		AbovePercent: row.AboveThresholdPercent,
		BelowPercent: row.BelowThresholdPercent,
	}, nil
}

func (s *SettingsService) GetSettings(ctx context.Context) (*db_models.PlatformSettings, error) {
	row, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if row == nil {
		return &db_models.PlatformSettings{
			ServiceFeeThreshold:   DefaultFeeSettings.Threshold,
			AboveThresholdPercent: DefaultFeeSettings.AbovePercent,
			BelowThresholdPercent: DefaultFeeSettings.BelowPercent,
		}, nil
	}
	return row, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, request request_models.UpdateSettingsRequest) error {
	if request.ServiceFeeThreshold < 0 {
		return utils.ValidationError("threshold must not be negative")
	}
	if request.AboveThresholdPercent < 0 || request.AboveThresholdPercent > 100 ||
		request.BelowThresholdPercent < 0 || request.BelowThresholdPercent > 100 {
		return utils.ValidationError("fee percentages must be between 0 and 100")
	}

	err := s.settingsRepo.Upsert(ctx, &db_models.PlatformSettings{
		ServiceFeeThreshold:   request.ServiceFeeThreshold,
		AboveThresholdPercent: request.AboveThresholdPercent,
		BelowThresholdPercent: request.BelowThresholdPercent,
	})
	if err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}
