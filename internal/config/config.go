// Package config provides functionality for managing configuration options
// for the client using command-line flags, environment variables and an
// optional YAML config file.
package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds the configuration values for the client.
type Options struct {
	// BaseURL is the root of the JejaKarbon REST API.
	BaseURL string `yaml:"base_url"`

	// SessionFile is the path of the persisted session slot.
	SessionFile string `yaml:"session_file"`

	// TimeoutSeconds bounds every API request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// LogLevel sets zap's minimum level ("debug", "info", "error").
	LogLevel string `yaml:"log_level"`

	// LogFile receives diagnostics; stderr belongs to the terminal UI.
	LogFile string `yaml:"log_file"`
}

// Default returns the baseline configuration before any overrides.
func Default() *Options {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".jejakarbon")
	return &Options{
		BaseURL:        "http://localhost:8080/api",
		SessionFile:    filepath.Join(dir, "session.json"),
		TimeoutSeconds: 15,
		LogLevel:       "info",
		LogFile:        filepath.Join(dir, "client.log"),
	}
}

// Timeout returns the request timeout as a duration.
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// Load builds the configuration: defaults, then the YAML file at path (if
// it exists), then environment variables. Missing files are not an error
// so a fresh install runs with defaults.
func Load(path string) *Options {
	options := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := yaml.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if baseURL := os.Getenv("JEJAKARBON_BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}
	if sessionFile := os.Getenv("JEJAKARBON_SESSION_FILE"); sessionFile != "" {
		options.SessionFile = sessionFile
	}
	if level := os.Getenv("JEJAKARBON_LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	return options
}
