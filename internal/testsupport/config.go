// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"seasonbrake/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config seeded with unique temp directories
// per test: one input backup folder, an output directory, and a preset file.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	input := filepath.Join(base, "disc1")
	if err := os.Mkdir(input, 0o755); err != nil {
		t.Fatalf("mkdir input: %v", err)
	}
	preset := filepath.Join(base, "preset.json")
	if err := os.WriteFile(preset, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Season.Inputs = []string{input}
	cfg.HandBrake.PresetFile = preset
	cfg.HandBrake.PresetName = "Test Preset"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithInputs replaces the source folder list on the test config.
func WithInputs(inputs ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Season.Inputs = inputs
	}
}

// WithStartEpisode overrides the starting episode number.
func WithStartEpisode(start int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Season.StartEpisode = start
	}
}

// WithExecute flips the transcode execution switch.
func WithExecute(execute bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.HandBrake.Execute = execute
	}
}
