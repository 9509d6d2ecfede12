package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"seasonbrake/internal/config"
	"seasonbrake/internal/runlock"
	"seasonbrake/internal/sequencer"
	"seasonbrake/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	outputDir  string
	inputDir   string
}

// setupCLITestEnv builds a validated configuration backed by temp
// directories, points the engine binary at a stub HandBrakeCLI, and writes
// the whole thing to a config file the CLI can load.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	cfg.HandBrake.Binary = writeStubEngine(t, t.TempDir())
	cfg.Notifications.Bell = false

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		outputDir:  cfg.Paths.OutputDir,
	}
	if len(cfg.Season.Inputs) > 0 {
		env.inputDir = cfg.Season.Inputs[0]
	}
	return env
}

// writeStubEngine creates a shell script standing in for HandBrakeCLI. Scans
// (--title 0) emit two title lines on stderr; transcodes touch the --output
// file and exit cleanly.
func writeStubEngine(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "handbrake-stub")
	script := `#!/bin/sh
scan=0
output=""
prev=""
for arg in "$@"; do
    if [ "$prev" = "--title" ] && [ "$arg" = "0" ]; then
        scan=1
    fi
    if [ "$prev" = "--output" ]; then
        output=$arg
    fi
    prev=$arg
done
if [ "$scan" = "1" ]; then
    echo "+ title 3:" >&2
    echo "  + duration: 00:42:17" >&2
    echo "+ title 68:" >&2
    exit 0
fi
if [ -n "$output" ]; then
    : > "$output"
fi
exit 0
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub engine: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitCreatesSample(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil {
		t.Fatal("expected error when config already exists")
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowListsResolvedSettings(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "season.prefix")
	requireContains(t, out, "s01e")
	requireContains(t, out, env.outputDir)
}

func TestScanCommandListsTitles(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", env.inputDir}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "3")
	requireContains(t, out, "68")
	requireContains(t, out, "2 titles found")
}

func TestPlanCommandShowsEpisodeSequence(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "s01e01.mkv")
	requireContains(t, out, "s01e02.mkv")
	requireContains(t, out, "Next episode would be #3")
}

func TestPlanCommandHonorsStartEpisode(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStartEpisode(9))

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "s01e09.mkv")
	requireContains(t, out, "s01e10.mkv")
	requireContains(t, out, "Next episode would be #11")
}

func TestRunCommandDryRunByDefault(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Dry run: 2 transcode commands constructed but not executed")

	if _, err := os.Stat(filepath.Join(env.outputDir, "s01e01.mkv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run must not produce output files, stat err = %v", err)
	}
}

func TestRunCommandExecuteFlagProducesOutputs(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"run", "--execute"}, env.configPath)
	if err != nil {
		t.Fatalf("run --execute: %v", err)
	}
	requireContains(t, out, "Transcoded 2 titles.")
	requireContains(t, out, "s01e02.mkv")

	for _, name := range []string{"s01e01.mkv", "s01e02.mkv"} {
		if _, err := os.Stat(filepath.Join(env.outputDir, name)); err != nil {
			t.Fatalf("expected output %s: %v", name, err)
		}
	}
}

func TestRunCommandExecuteFromConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithExecute(true))

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Transcoded 2 titles.")
	if _, err := os.Stat(filepath.Join(env.outputDir, "s01e01.mkv")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunCommandInvalidSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-backup")
	env := setupCLITestEnv(t, testsupport.WithInputs(missing))

	_, _, err := runCLI(t, []string{"run"}, env.configPath)
	if !errors.Is(err, sequencer.ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "seasonbrake")
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"unclassified", errors.New("boom"), exitFailure},
		{"configuration", fmt.Errorf("%w: bad prefix", errConfiguration), exitConfiguration},
		{"lock held", fmt.Errorf("start run: %w", runlock.ErrHeld), exitConfiguration},
		{"invalid source", fmt.Errorf("%w: /missing", sequencer.ErrInvalidSource), exitInvalidSource},
		{"engine", fmt.Errorf("%w: scan failed", sequencer.ErrEngine), exitEngine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
