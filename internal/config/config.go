// Package config defines the dashboard configuration and how it is loaded.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Generator names the external script that produces the input tables.
	// It appears in every "run this first" message.
	Generator string `koanf:"generator"`

	Source  Source  `koanf:"source"`
	OTEL    OTEL    `koanf:"otel"`
	Metrics Metrics `koanf:"metrics"`
}

// Source selects where the two tables are read from.
type Source struct {
	// Driver is "csv" or "libsql".
	Driver string `koanf:"driver"`

	ResponsesPath    string `koanf:"responses_path"`
	CapabilitiesPath string `koanf:"capabilities_path"`
	Delimiter        string `koanf:"delimiter"`

	DatabaseURL       string `koanf:"database_url"`
	AuthToken         string `koanf:"auth_token"`
	ResponsesTable    string `koanf:"responses_table"`
	CapabilitiesTable string `koanf:"capabilities_table"`
}

// OTEL configures the optional OTLP metric exporter.
type OTEL struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"`
	Insecure bool   `koanf:"insecure"`
}

// Metrics toggles the Prometheus /metrics endpoint.
type Metrics struct {
	Enabled bool `koanf:"enabled"`
}

const (
	DriverCSV    = "csv"
	DriverLibSQL = "libsql"
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Addr:      ":8080",
		Generator: "project3_complete.py",
		Source: Source{
			Driver:            DriverCSV,
			ResponsesPath:     "ai_analysis_results.csv",
			CapabilitiesPath:  "ai_capabilities_assessment.csv",
			Delimiter:         ",",
			ResponsesTable:    "ai_analysis_results",
			CapabilitiesTable: "ai_capabilities_assessment",
		},
		Metrics: Metrics{Enabled: true},
	}
}

// DelimiterRune returns the configured field delimiter.
func (s Source) DelimiterRune() rune {
	for _, r := range s.Delimiter {
		return r
	}
	return ','
}
