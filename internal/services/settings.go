package service

import (
	"context"

	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
)

type SettingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load settings").WithError(err)
	}

	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, patch *models.UpdateSettingsRequest) (*models.Settings, error) {

	settings, err := s.repo.Update(ctx, patch)
	if err != nil {
		return nil, errors.WriteFailedError("Failed to update settings").WithError(err)
	}

	return settings, nil
}

func (s *SettingsService) WhatsAppNumber(ctx context.Context) string {
	return s.repo.WhatsAppNumber(ctx)
}
