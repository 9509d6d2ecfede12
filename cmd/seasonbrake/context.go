package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"seasonbrake/internal/config"
	"seasonbrake/internal/handbrake"
	"seasonbrake/internal/sequencer"
)

// errConfiguration tags configuration failures for exit-code mapping.
var errConfiguration = errors.New("configuration error")

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("%w: %v", errConfiguration, err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = fmt.Errorf("%w: %v", errConfiguration, err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) engineClient() (*handbrake.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := handbrake.New(cfg.HandBrake.Binary, cfg.HandBrake.MinDuration, handbrake.Preset{
		File: cfg.HandBrake.PresetFile,
		Name: cfg.HandBrake.PresetName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfiguration, err)
	}
	return client, nil
}

func sequencerOptions(cfg *config.Config) sequencer.Options {
	return sequencer.Options{
		Inputs:       cfg.Season.Inputs,
		OutputDir:    cfg.Paths.OutputDir,
		Prefix:       cfg.Season.Prefix,
		StartEpisode: cfg.Season.StartEpisode,
		Extension:    cfg.Season.Extension,
	}
}
