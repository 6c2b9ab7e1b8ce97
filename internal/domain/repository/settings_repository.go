package repository

import (
	"context"

	"node-finder/internal/domain/entity"
)

// SettingsRepository is a keyed store of per-user discovery settings.
type SettingsRepository interface {
	// Get returns the settings for userID, or defaults if the user has none stored.
	Get(ctx context.Context, userID int64) (entity.Settings, error)

	// Update applies fn to the user's settings and stores the result.
	Update(ctx context.Context, userID int64, fn func(*entity.Settings) error) (entity.Settings, error)
}
