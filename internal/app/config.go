package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl file or directory

	LogFormat string
	LogLevel  string

	// HostOS and HostArch override the probed execution host, so a plan for
	// another machine is reproducible anywhere. Empty means "probe".
	HostOS   string
	HostArch string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
