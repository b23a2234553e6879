package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/repositories"
)

// SettingsService defines the interface for app settings operations
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.AppSettings, error)
	UpdateSettings(ctx context.Context, patch *models.AppSettingsPatch, updatedBy int64) (*models.AppSettings, error)
}

// settingsServiceImpl implements SettingsService
type settingsServiceImpl struct {
	settingsRepo repositories.ISettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.ISettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings retrieves the settings record.
func (s *settingsServiceImpl) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings applies a partial update and returns the fresh record.
func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, patch *models.AppSettingsPatch, updatedBy int64) (*models.AppSettings, error) {
	if err := s.settingsRepo.Update(ctx, patch, updatedBy); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminId", updatedBy).Msg("App settings updated")

	return s.settingsRepo.Get(ctx)
}
