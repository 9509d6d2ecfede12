package config

import (
	"errors"
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSeason(); err != nil {
		return err
	}
	if err := c.normalizeHandBrake(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSeason() error {
	inputs := make([]string, 0, len(c.Season.Inputs))
	for _, input := range c.Season.Inputs {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("season.inputs: %w", err)
		}
		inputs = append(inputs, expanded)
	}
	c.Season.Inputs = inputs

	c.Season.Prefix = strings.TrimSpace(c.Season.Prefix)

	ext := strings.TrimSpace(c.Season.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Season.Extension = ext
	return nil
}

func (c *Config) normalizeHandBrake() error {
	c.HandBrake.Binary = strings.TrimSpace(c.HandBrake.Binary)
	if c.HandBrake.Binary == "" {
		c.HandBrake.Binary = defaultBinary
	}
	c.HandBrake.PresetName = strings.TrimSpace(c.HandBrake.PresetName)
	if trimmed := strings.TrimSpace(c.HandBrake.PresetFile); trimmed != "" {
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("handbrake.preset_file: %w", err)
		}
		c.HandBrake.PresetFile = expanded
	} else {
		c.HandBrake.PresetFile = ""
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSeason(); err != nil {
		return err
	}
	if err := c.validateHandBrake(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateSeason() error {
	if len(c.Season.Inputs) == 0 {
		return errors.New("season.inputs must list at least one source folder")
	}
	if c.Season.Prefix == "" {
		return errors.New("season.prefix must be set")
	}
	if c.Season.StartEpisode < 1 {
		return fmt.Errorf("season.start_episode must be at least 1, got %d", c.Season.StartEpisode)
	}
	if c.Season.Extension == "" {
		return errors.New("season.extension must be set")
	}
	return nil
}

func (c *Config) validateHandBrake() error {
	if c.HandBrake.MinDuration <= 0 {
		return fmt.Errorf("handbrake.min_duration must be a positive number of seconds, got %d", c.HandBrake.MinDuration)
	}
	if c.HandBrake.PresetFile == "" {
		return errors.New("handbrake.preset_file must be set")
	}
	if c.HandBrake.PresetName == "" {
		return errors.New("handbrake.preset_name must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
