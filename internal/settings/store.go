package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/reviewflow/internal/models"
)

const (
	API_KEY_KEY        = "reviewflow:settings:api_key"
	STORE_SETTINGS_KEY = "reviewflow:settings:store"
)

var (
	ErrStoreUnavailable = errors.New("settings store unavailable")
	ErrInvalidSettings  = errors.New("invalid settings")
)

// KV is the slice of the Valkey client the store needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, key string) error
}

// Store persists the client-side API key and store preferences. With a nil
// KV it serves only the fallback key and default settings.
type Store struct {
	kv          KV
	fallbackKey string
}

func NewStore(kv KV, fallbackKey string) *Store {
	return &Store{kv: kv, fallbackKey: strings.TrimSpace(fallbackKey)}
}

// APIKey returns the persisted key, or the fallback key when none is stored.
func (s *Store) APIKey(ctx context.Context) (string, error) {
	if s.kv == nil {
		return s.fallbackKey, nil
	}

	key, ok, err := s.kv.Get(ctx, API_KEY_KEY)
	if err != nil {
		return s.fallbackKey, fmt.Errorf("failed to read api key: %w", err)
	}
	if !ok || strings.TrimSpace(key) == "" {
		return s.fallbackKey, nil
	}
	return key, nil
}

func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: api key is empty", ErrInvalidSettings)
	}
	if s.kv == nil {
		return ErrStoreUnavailable
	}
	if err := s.kv.Set(ctx, API_KEY_KEY, key); err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}
	slog.Info("[SettingsStore] API key saved")
	return nil
}

func (s *Store) ClearAPIKey(ctx context.Context) error {
	if s.kv == nil {
		return ErrStoreUnavailable
	}
	if err := s.kv.Del(ctx, API_KEY_KEY); err != nil {
		return fmt.Errorf("failed to clear api key: %w", err)
	}
	slog.Info("[SettingsStore] API key cleared")
	return nil
}

func (s *Store) Settings(ctx context.Context) (models.StoreSettings, error) {
	settings := models.DefaultStoreSettings()

	if s.kv != nil {
		raw, ok, err := s.kv.Get(ctx, STORE_SETTINGS_KEY)
		if err != nil {
			return settings, fmt.Errorf("failed to read settings: %w", err)
		}
		if ok {
			if err := json.Unmarshal([]byte(raw), &settings); err != nil {
				slog.Warn("[SettingsStore] Stored settings are corrupt, using defaults",
					slog.String("error", err.Error()))
				settings = models.DefaultStoreSettings()
			}
		}
	}

	key, err := s.APIKey(ctx)
	if err != nil {
		slog.Warn("[SettingsStore] Could not determine api key status",
			slog.String("error", err.Error()))
	}
	settings.HasAPIKey = key != ""
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings models.StoreSettings) (models.StoreSettings, error) {
	if err := Validate(settings); err != nil {
		return settings, err
	}
	if s.kv == nil {
		return settings, ErrStoreUnavailable
	}

	settings.HasAPIKey = false
	raw, err := json.Marshal(settings)
	if err != nil {
		return settings, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.kv.Set(ctx, STORE_SETTINGS_KEY, string(raw)); err != nil {
		return settings, fmt.Errorf("failed to save settings: %w", err)
	}

	return s.Settings(ctx)
}

func Validate(settings models.StoreSettings) error {
	if settings.AlertThreshold < 0 || settings.AlertThreshold > 1 {
		return fmt.Errorf("%w: alert_threshold must be within [0, 1]", ErrInvalidSettings)
	}
	switch settings.AIMode {
	case models.AI_MODE_ECO, models.AI_MODE_ADVANCED:
	default:
		return fmt.Errorf("%w: ai_mode must be %q or %q", ErrInvalidSettings, models.AI_MODE_ECO, models.AI_MODE_ADVANCED)
	}
	return nil
}
