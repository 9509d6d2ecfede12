// Package logging constructs slog loggers for seasonbrake.
//
// Two formats are supported: a console handler that renders
// "TIMESTAMP LEVEL component: message key=value" lines for interactive runs,
// and a JSON handler for machine consumption. Output can be teed to a per-run
// log file alongside stdout.
package logging
