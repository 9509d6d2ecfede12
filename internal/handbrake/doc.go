// Package handbrake wraps HandBrakeCLI invocations.
//
// The client builds scan and transcode command lines, executes them through an
// injectable Executor, and extracts title identifiers from the engine's
// diagnostic output. Title filtering by duration happens inside HandBrake via
// --min-duration; this package never re-judges durations.
package handbrake
