// Package sequencer maps discovered titles onto a global episode sequence.
//
// Build walks the configured source folders in order, scans each directory
// for titles, and emits one transcode job per title with a strictly
// increasing, gapless episode number shared across all folders. Runner then
// reports each job's command line and, when execution is enabled, drives the
// engine one job at a time.
//
// The episode counter is a value threaded through Build and returned in the
// Plan; nothing in this package holds mutable state between calls.
package sequencer
