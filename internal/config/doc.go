// Package config loads, normalizes, and validates seasonbrake configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and surfaces validation failures as
// field-prefixed errors. The Config type centralizes every knob a run needs:
// source folders, output naming, HandBrake invocation settings, and
// notification targets.
//
// Always obtain settings through this package so downstream code receives
// absolute paths and canonical values.
package config
