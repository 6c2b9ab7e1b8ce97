package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"node-finder/internal/config"
	"node-finder/internal/domain/entity"
	domainRepo "node-finder/internal/domain/repository"
	"node-finder/internal/pkg/apperrors"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Compile-time check
var _ domainRepo.SettingsRepository = (*SettingsRepository)(nil)

const settingsKeyPrefix = "settings_"

// SettingsRepository keeps per-user settings in go-cache without expiry and mirrors
// them to a YAML snapshot when a path is configured.
type SettingsRepository struct {
	mu     sync.Mutex
	cache  *cache.Cache
	path   string
	logger *zap.Logger
}

// snapshot is the on-disk layout, keyed by user id.
type snapshot struct {
	Users map[int64]entity.Settings `yaml:"users"`
}

// NewSettingsRepository creates the store and loads an existing snapshot, if any.
func NewSettingsRepository(cfg config.SettingsConfig, logger *zap.Logger) (*SettingsRepository, error) {
	r := &SettingsRepository{
		cache:  cache.New(cache.NoExpiration, 0),
		path:   cfg.Path,
		logger: logger.Named("SettingsStorage"),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the stored settings for userID, or defaults.
func (r *SettingsRepository) Get(_ context.Context, userID int64) (entity.Settings, error) {
	if s, ok := r.lookup(userID); ok {
		return s.Clone(), nil
	}
	return entity.DefaultSettings(), nil
}

// Update applies fn to a copy of the user's settings, validates and stores the result.
// Nothing is stored if fn or validation fails.
func (r *SettingsRepository) Update(_ context.Context, userID int64, fn func(*entity.Settings) error) (entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.lookup(userID)
	if !ok {
		current = entity.DefaultSettings()
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return entity.Settings{}, err
	}
	if err := validateSettings(next); err != nil {
		return entity.Settings{}, err
	}

	r.cache.Set(settingsKey(userID), next, cache.NoExpiration)
	if err := r.persist(); err != nil {
		// Roll back so memory and disk agree.
		if ok {
			r.cache.Set(settingsKey(userID), current, cache.NoExpiration)
		} else {
			r.cache.Delete(settingsKey(userID))
		}
		return entity.Settings{}, err
	}

	r.logger.Debug("Settings updated", zap.Int64("userId", userID))
	return next.Clone(), nil
}

func (r *SettingsRepository) lookup(userID int64) (entity.Settings, bool) {
	x, found := r.cache.Get(settingsKey(userID))
	if !found {
		return entity.Settings{}, false
	}
	s, ok := x.(entity.Settings)
	if !ok {
		r.logger.Warn("Settings data type mismatch", zap.Int64("userId", userID), zap.String("type", fmt.Sprintf("%T", x)))
	}
	return s, ok
}

func validateSettings(s entity.Settings) error {
	if s.DefaultCount <= 0 {
		return fmt.Errorf("%w: default count must be positive, got %d", apperrors.ErrInvalidInput, s.DefaultCount)
	}
	if _, err := entity.ParseTransport(string(s.Transport)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	for chainID, u := range s.ReferenceRPCs {
		if _, err := entity.NewReferenceURL(u); err != nil {
			return fmt.Errorf("%w: reference for chain %d: %v", apperrors.ErrInvalidInput, chainID, err)
		}
	}
	return nil
}

func (r *SettingsRepository) load() error {
	if r.path == "" {
		return nil
	}
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.logger.Info("No settings snapshot found, starting empty", zap.String("path", r.path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read settings snapshot: %v", apperrors.ErrInternal, err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: failed to parse settings snapshot %s: %v", apperrors.ErrParse, r.path, err)
	}
	for userID, s := range snap.Users {
		if s.ReferenceRPCs == nil {
			s.ReferenceRPCs = map[uint64]string{}
		}
		r.cache.Set(settingsKey(userID), s, cache.NoExpiration)
	}
	r.logger.Info("Loaded settings snapshot", zap.String("path", r.path), zap.Int("users", len(snap.Users)))
	return nil
}

// persist writes all settings atomically. Callers hold r.mu.
func (r *SettingsRepository) persist() error {
	if r.path == "" {
		return nil
	}

	snap := snapshot{Users: make(map[int64]entity.Settings)}
	for key, item := range r.cache.Items() {
		userID, err := strconv.ParseInt(strings.TrimPrefix(key, settingsKeyPrefix), 10, 64)
		if err != nil {
			continue
		}
		if s, ok := item.Object.(entity.Settings); ok {
			snap.Users[userID] = s
		}
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: failed to encode settings snapshot: %v", apperrors.ErrInternal, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("%w: failed to write settings snapshot: %v", apperrors.ErrInternal, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: failed to write settings snapshot: %v", apperrors.ErrInternal, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to write settings snapshot: %v", apperrors.ErrInternal, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: failed to replace settings snapshot: %v", apperrors.ErrInternal, err)
	}
	return nil
}

func settingsKey(userID int64) string {
	return settingsKeyPrefix + strconv.FormatInt(userID, 10)
}
