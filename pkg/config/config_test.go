package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LocalSettings {
		t.Error("default config should not enable local settings")
	}
	if len(cfg.SkipDoctorTools) != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{LocalSettings: true, SkipDoctorTools: []string{"npx"}}
	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	if GetConfigPath() != filepath.Join(home, ".anvil", "config.json") {
		t.Errorf("config path = %q", GetConfigPath())
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !loaded.LocalSettings || len(loaded.SkipDoctorTools) != 1 || loaded.SkipDoctorTools[0] != "npx" {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
}
