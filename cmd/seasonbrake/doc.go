// Package main hosts the seasonbrake CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into title
// scans, job planning, and batch transcode runs. It centralizes configuration
// resolution, logging setup, and exit-code mapping so subcommands can focus
// on user experience; the sequencing logic itself lives in the internal
// packages.
package main
