// Package config handles application configuration.
//
// Settings come from an optional mnemonic.conf file in the data
// directory, overridden by command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime configuration for the tools.
type Config struct {
	// Core
	DataDir     string
	Language    string
	WordlistDir string

	// Logging
	Log LogConfig
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string
	File  string
	JSON  bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		Language: "english",
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}

// VaultDir returns the vault path under the data directory.
func (c *Config) VaultDir() string {
	return filepath.Join(c.DataDir, "vault")
}

// ConfFile returns the conf file path under the data directory.
func (c *Config) ConfFile() string {
	return filepath.Join(c.DataDir, "mnemonic.conf")
}

// DefaultDataDir returns the platform-appropriate data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Mnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Mnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "Mnemonic")
	default:
		return filepath.Join(home, ".mnemonic")
	}
}
