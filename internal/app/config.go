package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// TaxonomiesPath points at a .hcl definition file or a directory of
	// them. Empty means only compiled-in modules contribute taxonomies.
	TaxonomiesPath string

	LogFormat string
	LogLevel  string

	// AdminPort serves the read-only admin endpoints. 0 is disabled.
	AdminPort int
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.AdminPort < 0 {
		return nil, errors.New("AdminPort must be zero (disabled) or a positive port number")
	}

	return &cfg, nil
}
