package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		date        string
		commit      string
		wantVersion string
		wantString  string
	}{
		{
			name:        "all values set",
			version:     "1.2.0",
			date:        "2026-10-01",
			commit:      "abc123",
			wantVersion: "1.2.0",
			wantString:  "version 1.2.0 (date 2026-10-01, commit abc123)",
		},
		{
			name:        "empty values become N/A",
			wantVersion: "N/A",
			wantString:  "version N/A (date N/A, commit N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)
			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantString, info.String())
		})
	}
}

func TestAppBuildInfo_ZeroValueString(t *testing.T) {
	var info AppBuildInfo
	assert.Equal(t, "version N/A (date N/A, commit N/A)", info.String())
}

func TestDeviceState_IsOn(t *testing.T) {
	assert.True(t, DeviceState{Status: StatusOn}.IsOn())
	assert.False(t, DeviceState{Status: StatusOff}.IsOn())
	assert.False(t, DeviceState{Status: StatusDeviceError}.IsOn())
}
