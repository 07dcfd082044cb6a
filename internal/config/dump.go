package config

import "github.com/sanity-io/litter"

const masked = "******"

// Dump renders the configuration for debug logging with every secret
// replaced by a fixed mask.
func (cfg StructuredConfig) Dump() string {
	safe := cfg
	safe.App.AdminPasswordHash = mask(safe.App.AdminPasswordHash)
	safe.App.TokenSignKey = mask(safe.App.TokenSignKey)
	safe.Device.APIKey = mask(safe.Device.APIKey)
	safe.Adapter.Password = mask(safe.Adapter.Password)

	return litter.Options{
		HidePrivateFields: true,
		Compact:           true,
	}.Sdump(safe)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return masked
}
