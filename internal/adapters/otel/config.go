package otel

import "github.com/emiliopalmerini/aidash/internal/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// LoadConfig takes the exporter settings from the loaded process config.
func LoadConfig(c config.OTEL) Config {
	return Config{
		Endpoint: c.Endpoint,
		Enabled:  c.Enabled,
		Insecure: c.Insecure,
	}
}
