package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without defaults fails
// validation because no device address is known.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidDeviceConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3636", cfg.Device.Address)
	assert.Equal(t, 5*time.Second, cfg.Device.Timeout)
	assert.Equal(t, "lightpack.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.False(t, cfg.App.AuthEnabled())
	assert.False(t, cfg.Hue.Enabled())
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Device: Device{APIKey: "first"}},
		&StructuredConfig{Device: Device{APIKey: "second", Address: "10.0.0.2:3636"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.Device.APIKey)
	assert.Equal(t, "10.0.0.2:3636", cfg.Device.Address)
	assert.Equal(t, DefaultDeviceTimeout, cfg.Device.Timeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("DEVICE_API_KEY", "env-key")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-key", b.configs[0].Device.APIKey)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("DEVICE_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withArgs ──────────────────────────────────────────────────────────────────

func TestWithArgs_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withArgs(nil))
}

func TestWithArgs_FlagOverridesEnv(t *testing.T) {
	t.Setenv("DEVICE_API_KEY", "env-key")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withArgs([]string{"-api-key", "flag-key"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Device.APIKey)
}

func TestWithArgs_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withArgs([]string{"-no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"device": map[string]any{"api_key": "json-key", "timeout": "2s"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.Device.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Device.Timeout)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty device address",
			mutate:  func(cfg *StructuredConfig) { cfg.Device.Address = "" },
			wantErr: ErrInvalidDeviceConfigs,
		},
		{
			name:    "zero device timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Device.Timeout = 0 },
			wantErr: ErrInvalidDeviceConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "auth without sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminPasswordHash = "$2a$10$hash" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "auth with sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminPasswordHash = "$2a$10$hash"
				cfg.App.TokenSignKey = "secret"
			},
		},
		{
			name:    "negative poll interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.PollInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "hue bridge without user",
			mutate:  func(cfg *StructuredConfig) { cfg.Hue.BridgeIP = "192.168.1.2" },
			wantErr: ErrInvalidHueConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := newClientConfig(defaultConfig())
	require.NoError(t, cfg.validate())
	assert.False(t, cfg.Remote())

	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	assert.True(t, cfg.Remote())
	require.NoError(t, cfg.validate())

	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
