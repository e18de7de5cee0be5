// Package config loads process-wide engine configuration from the
// environment, grounded on louisbranch-fracturing.space which wires
// github.com/caarlos0/env/v11 for the same purpose. Spec.md section 6 names
// exactly two environment-driven knobs: a RUST_LOG-style tracing filter and
// a diagnostic log directory; neither is a process-wide mutable global in
// the sense spec.md section 9 warns about (the catalog and tracing
// configuration are the only ones), since Config is loaded once at startup
// and handed explicitly to the pieces that need it.
package config

import "github.com/caarlos0/env/v11"

// Config is the engine's environment-driven configuration.
type Config struct {
	// LogFilter mirrors RUST_LOG: a level name such as "CARD" or "GAME".
	LogFilter string `env:"DREAMTIDES_LOG" envDefault:"CARD"`

	// LogDir is where diagnostic dumps (parse failures, invariant panics)
	// are written.
	LogDir string `env:"DREAMTIDES_LOG_DIR" envDefault:"logs"`

	// MaxRollouts is parsed from the environment but read by no command in
	// this module; package search has no default rollout count of its own.
	MaxRollouts int `env:"DREAMTIDES_MAX_ROLLOUTS" envDefault:"0"`
}

// Load parses Config from the current process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
