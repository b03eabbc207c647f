package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultFormat != "ass" {
		t.Errorf("DefaultFormat = %q, want ass", cfg.DefaultFormat)
	}
	if cfg.Notice != "" {
		t.Errorf("Notice = %q, want empty", cfg.Notice)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "default_format = \"ssa\"\nnotice = \"exported by me\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultFormat != "ssa" {
		t.Errorf("DefaultFormat = %q, want ssa", cfg.DefaultFormat)
	}
	if cfg.Notice != "exported by me" {
		t.Errorf("Notice = %q", cfg.Notice)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_format = [broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}
