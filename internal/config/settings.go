package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultOutput      = "out.mp3"
	DefaultAudioFormat = "mp3"
)

// Config file search locations, checked in order
var configLocations = []string{
	"./slycer.yaml",
	"./slycer.yml",
}

// Settings holds the run configuration. Created once at startup from
// defaults, an optional YAML config file, and CLI flags; read-only after
// validation.
type Settings struct {
	// Output is the temporary combined-audio path
	Output string `yaml:"output"`

	// AudioFormat is the output track container/codec, e.g. "mp3", "m4a"
	AudioFormat string `yaml:"audio_format"`

	// Dest is the destination directory for split tracks; empty means the
	// current working directory
	Dest string `yaml:"dest"`

	// Keep retains the combined audio file after splitting
	Keep bool `yaml:"keep"`

	// AutoInstall permits installing missing dependencies without prompting
	AutoInstall bool `yaml:"auto_install"`

	// Prefix is a literal filename prefix component
	Prefix string `yaml:"prefix"`

	// PrefixName derives a filename prefix from the video title
	PrefixName bool `yaml:"prefix_name"`

	// Numbers adds a zero-padded ordinal filename component
	Numbers bool `yaml:"numbers"`
}

// DefaultSettings returns settings with built-in defaults
func DefaultSettings() *Settings {
	return &Settings{
		Output:      DefaultOutput,
		AudioFormat: DefaultAudioFormat,
	}
}

// LoadFile loads settings from a YAML file, starting from defaults
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in standard locations.
// Returns empty string if not found (non-fatal).
func FindConfigFile() string {
	locations := append([]string{}, configLocations...)
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".slycer", "config.yaml"),
			filepath.Join(home, ".slycer", "config.yml"),
		)
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load builds settings with priority: config file > defaults. An explicit
// path must exist; otherwise standard locations are tried and defaults are
// used when none is present. CLI flag overrides are applied by the caller.
func Load(configPath string) (*Settings, error) {
	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath == "" {
		return DefaultSettings(), nil
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks the final configuration
func (s *Settings) Validate() error {
	if s.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if s.AudioFormat == "" {
		return fmt.Errorf("audio format must not be empty")
	}
	return nil
}
