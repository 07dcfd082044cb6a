// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Device.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AuthEnabled() && (cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.PollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Hue.Enabled() && (cfg.Hue.Username == "" || cfg.Hue.PollInterval <= 0) {
		return ErrInvalidHueConfigs
	}

	return nil
}

func (d Device) validate() error {
	if d.Address == "" || d.Timeout <= 0 {
		return ErrInvalidDeviceConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Device.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
