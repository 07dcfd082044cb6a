package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 3636},
			expected: "localhost:3636",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:3636",
			expectedAddr: NetAddress{Host: "localhost", Port: 3636},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost3636",
			expectError: true,
		},
		{
			name:        "port is not a number",
			input:       "localhost:abc",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "host name is not an IP",
			input:       "lightpack.local:3636",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-d", "/tmp/journal.db",
		"-config", "/etc/lightpack.json",
		"-device", "127.0.0.1:3636",
		"-api-key", "key",
		"-device-timeout", "2s",
		"-server", "http://127.0.0.1:8081",
		"-password", "pw",
		"-request-timeout", "7s",
		"-poll-interval", "30s",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-hue-bridge", "192.168.1.2",
		"-hue-user", "user",
		"-hue-group", "4",
		"-notify",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/lightpack.json", cfg.JSONFilePath)
	assert.Equal(t, "127.0.0.1:3636", cfg.Device.Address)
	assert.Equal(t, "key", cfg.Device.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Device.Timeout)
	assert.Equal(t, "http://127.0.0.1:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "pw", cfg.Adapter.Password)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "192.168.1.2", cfg.Hue.BridgeIP)
	assert.Equal(t, "user", cfg.Hue.Username)
	assert.Equal(t, 4, cfg.Hue.GroupID)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Device.Address)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Device.Timeout)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidDeviceAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-device", "nowhere"})
	assert.Error(t, err)
}
