package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/store"
)

const settingsPath = "settings"

// DefaultWhatsAppNumber seeds the settings record the first time it is
// read while absent.
const DefaultWhatsAppNumber = "5551992155747"

type SettingsRepository interface {
	// Get reads the settings record, seeding the hardcoded default when
	// absent. Callers must tolerate the write this read can trigger.
	Get(ctx context.Context) (*models.Settings, error)
	// Update shallow-merges the patch over the current record and writes
	// the full result back. Not transactional: concurrent updates race
	// and the later write wins in full.
	Update(ctx context.Context, patch *models.UpdateSettingsRequest) (*models.Settings, error)
	// WhatsAppNumber is a best-effort read that falls back to the default
	// number when the store is unreachable.
	WhatsAppNumber(ctx context.Context) string
}

type settingsRepository struct {
	kv store.Store
}

func NewSettingsRepo(kv store.Store) SettingsRepository {
	return &settingsRepository{kv: kv}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {

	settings := &models.Settings{}

	found, err := r.kv.Get(ctx, settingsPath, settings)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if found {
		return settings, nil
	}

	settings = &models.Settings{
		WhatsAppNumber: DefaultWhatsAppNumber,
		UpdatedAt:      time.Now().UTC(),
	}

	if err := r.kv.Set(ctx, settingsPath, settings); err != nil {
		return nil, fmt.Errorf("seeding default settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, patch *models.UpdateSettingsRequest) (*models.Settings, error) {

	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(settings)
	settings.UpdatedAt = time.Now().UTC()

	if err := r.kv.Set(ctx, settingsPath, settings); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) WhatsAppNumber(ctx context.Context) string {

	settings, err := r.Get(ctx)
	if err != nil {
		slog.Warn("Settings read failed, using default contact number", slog.String("error", err.Error()))

		return DefaultWhatsAppNumber
	}

	return settings.WhatsAppNumber
}
