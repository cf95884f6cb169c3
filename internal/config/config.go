package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the nlpy user settings.
type Config struct {
	// PythonBin is the interpreter used to run generated snippets.
	// Empty means auto-detect (python3, then python).
	PythonBin string `json:"python_bin,omitempty"`

	// AutoRun skips the "Run this code?" confirmation in the shell and
	// executes every generated snippet immediately.
	AutoRun bool `json:"auto_run,omitempty"`

	// HistoryPath overrides the default shell history location.
	HistoryPath string `json:"history_path,omitempty"`
}

var (
	configDir   string
	configPath  string
	historyPath string
)

func init() {
	homeDir := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	}
	configDir = filepath.Join(homeDir, ".config", "nlpy")
	configPath = filepath.Join(configDir, "config.json")
	historyPath = filepath.Join(configDir, "history")
}

// ensureConfigDir creates the config directory if it doesn't exist
func ensureConfigDir() error {
	return os.MkdirAll(configDir, 0700)
}

// Load reads the configuration from file. A missing file is not an
// error; defaults apply.
func Load() (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to file.
func Save(cfg *Config) error {
	if err := ensureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// History returns the shell history file path, creating the config
// directory so the shell can write it on exit.
func (c *Config) History() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	_ = ensureConfigDir()
	return historyPath
}
