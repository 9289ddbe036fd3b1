package config

import (
	"log/slog"
	"time"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration. It is read once at startup and
// treated as read-only for the lifetime of the process.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Agent    Agent      `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT" validate:"required"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"required"`
}

// Agent holds the flight agent configuration: which provider to talk to,
// its credentials, and the external collaborator endpoints.
type Agent struct {
	Provider        string        `mapstructure:"FLIGHT_PROVIDER"`
	ProviderURL     string        `mapstructure:"FLIGHT_PROVIDER_URL"`
	APIKey          string        `mapstructure:"FLIGHT_PROVIDER_API_KEY"`
	ProviderTimeout time.Duration `mapstructure:"FLIGHT_PROVIDER_TIMEOUT" validate:"required"`
	DefaultCurrency string        `mapstructure:"FLIGHT_DEFAULT_CURRENCY" validate:"required,len=3"`
	GeoLookupURL    string        `mapstructure:"GEO_LOOKUP_URL"`
	GeoTimeout      time.Duration `mapstructure:"GEO_TIMEOUT" validate:"required"`
}

// ProviderIdentifier prefers an explicit provider URL over the short name.
func (a Agent) ProviderIdentifier() string {
	if a.ProviderURL != "" {
		return a.ProviderURL
	}

	return a.Provider
}
