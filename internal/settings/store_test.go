package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value string) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Del(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data, key)
	return nil
}

func TestStoreAPIKeyLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeKV(), "env-key")

	key, err := store.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)

	require.NoError(t, store.SetAPIKey(ctx, "  stored-key "))
	key, err = store.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored-key", key)

	require.NoError(t, store.ClearAPIKey(ctx))
	key, err = store.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	err := NewStore(newFakeKV(), "").SetAPIKey(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestStoreWithoutBackend(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil, "env-key")

	key, err := store.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)

	assert.ErrorIs(t, store.SetAPIKey(ctx, "k"), ErrStoreUnavailable)
	assert.ErrorIs(t, store.ClearAPIKey(ctx), ErrStoreUnavailable)

	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AI_MODE_ADVANCED, settings.AIMode)
	assert.True(t, settings.HasAPIKey)
}

func TestStoreBackendErrorKeepsFallbackKey(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("connection refused")

	key, err := NewStore(kv, "env-key").APIKey(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "env-key", key)
}

func TestStoreSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewStore(kv, "")

	defaults, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.4, defaults.AlertThreshold)
	assert.True(t, defaults.EmailAlerts)
	assert.False(t, defaults.HasAPIKey)

	saved, err := store.SaveSettings(ctx, models.StoreSettings{
		RestaurantName: "Spice Garden",
		AIMode:         models.AI_MODE_ECO,
		AlertThreshold: 0.7,
		HasAPIKey:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", saved.RestaurantName)
	assert.Equal(t, models.AI_MODE_ECO, saved.AIMode)
	assert.False(t, saved.EmailAlerts)
	assert.False(t, saved.HasAPIKey)
	assert.NotContains(t, kv.data[STORE_SETTINGS_KEY], `"has_api_key":true`)
}

func TestStoreCorruptSettingsUseDefaults(t *testing.T) {
	kv := newFakeKV()
	kv.data[STORE_SETTINGS_KEY] = "{not json"

	settings, err := NewStore(kv, "").Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStoreSettings(), settings)
}

func TestValidate(t *testing.T) {
	valid := models.DefaultStoreSettings()
	assert.NoError(t, Validate(valid))

	tooHigh := valid
	tooHigh.AlertThreshold = 1.2
	assert.ErrorIs(t, Validate(tooHigh), ErrInvalidSettings)

	badMode := valid
	badMode.AIMode = "turbo"
	assert.ErrorIs(t, Validate(badMode), ErrInvalidSettings)
}
