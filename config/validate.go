package config

import (
	"fmt"
)

var validLanguages = map[string]bool{
	"english":             true,
	"chinese_simplified":  true,
	"chinese_traditional": true,
	"czech":               true,
	"french":              true,
	"italian":             true,
	"japanese":            true,
	"korean":              true,
	"portuguese":          true,
	"russian":             true,
	"spanish":             true,
	"turkish":             true,
}

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if !validLanguages[cfg.Language] {
		return fmt.Errorf("unknown language %q", cfg.Language)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}
