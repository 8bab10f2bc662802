package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	if cfg.Output != DefaultOutput {
		t.Errorf("Expected output %s, got %s", DefaultOutput, cfg.Output)
	}
	if cfg.AudioFormat != DefaultAudioFormat {
		t.Errorf("Expected audio format %s, got %s", DefaultAudioFormat, cfg.AudioFormat)
	}
	if cfg.Keep || cfg.AutoInstall || cfg.Numbers || cfg.PrefixName {
		t.Error("Expected boolean flags to default to false")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slycer.yaml")
	content := []byte("audio_format: m4a\ndest: tracks\nnumbers: true\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.AudioFormat != "m4a" {
		t.Errorf("Expected audio format m4a, got %s", cfg.AudioFormat)
	}
	if cfg.Dest != "tracks" {
		t.Errorf("Expected dest tracks, got %s", cfg.Dest)
	}
	if !cfg.Numbers {
		t.Error("Expected numbers to be true")
	}

	// Unset keys keep defaults
	if cfg.Output != DefaultOutput {
		t.Errorf("Expected default output %s, got %s", DefaultOutput, cfg.Output)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("output: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Run from an empty directory so no project-local config is picked up
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error: %v", err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir() back error: %v", err)
		}
	}()
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Expected default output, got %s", cfg.Output)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"empty output", func(s *Settings) { s.Output = "" }, true},
		{"empty format", func(s *Settings) { s.AudioFormat = "" }, true},
	}

	for _, test := range tests {
		cfg := DefaultSettings()
		test.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}
