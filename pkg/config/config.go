// Package config holds anvil's own CLI settings (not the detected project's):
// placement defaults and doctor preferences, stored as JSON under the user's
// home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDir  = ".anvil"
	configFile = "config.json"

	// PermDirectory is the file permission for created directories.
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files.
	PermConfigFile = 0644
)

type Config struct {
	// LocalSettings routes the manifest and hooks into the personal
	// settings file by default, as if --local were always passed.
	LocalSettings bool `json:"local_settings,omitempty"`

	// SkipDoctorTools are command names the doctor check should not
	// report as missing.
	SkipDoctorTools []string `json:"skip_doctor_tools,omitempty"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDir, configFile)
	}
	return filepath.Join(homeDir, configDir, configFile)
}

func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

func (c *Config) SaveConfig() error {
	configPath := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
