package server

import "time"

// Config holds the settings of the HTTP API started by `fad start`.
type Config struct {
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey guards every route when set.
	ApiKey string `mapstructure:"api_key" default:""`
	// ManifestPath is checked when a request names no manifest.
	ManifestPath string `mapstructure:"manifest_path" default:"fad-manifest.toml"`
	// CacheTTLSeconds keeps asset listings between requests. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}

// HasAuth reports whether requests must carry the API key.
func (c Config) HasAuth() bool {
	return c.ApiKey != ""
}

// CacheTTL returns the listing cache lifetime. Zero or less disables caching.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
