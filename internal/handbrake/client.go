package handbrake

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Preset identifies an exported HandBrake GUI preset.
type Preset struct {
	File string
	Name string
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout, onStderr func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps HandBrakeCLI interactions.
type Client struct {
	binary      string
	minDuration int
	preset      Preset
	exec        Executor
}

// New constructs a HandBrake client. minDuration is the scan filter in
// seconds and must be positive.
func New(binary string, minDuration int, preset Preset, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("handbrake binary required")
	}
	if minDuration <= 0 {
		return nil, fmt.Errorf("minimum title duration must be positive, got %d", minDuration)
	}
	client := &Client{
		binary:      binary,
		minDuration: minDuration,
		preset:      preset,
		exec:        commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ScanCommand returns the scan invocation for one source folder.
// Title 0 asks HandBrake to scan all titles.
func (c *Client) ScanCommand(folder string) []string {
	return []string{
		"--input", folder,
		"--title", "0",
		"--min-duration", strconv.Itoa(c.minDuration),
	}
}

// TranscodeCommand returns the transcode invocation for one title.
func (c *Client) TranscodeCommand(folder, title, output string) []string {
	return []string{
		"--preset-import-gui", c.preset.File,
		"-Z", c.preset.Name,
		"--input", folder,
		"--title", title,
		"--output", output,
	}
}

// CommandLine renders an invocation for progress reporting.
func (c *Client) CommandLine(args []string) string {
	return c.binary + " " + strings.Join(args, " ")
}

// ScanTitles runs the engine in scan mode against folder and returns the
// title identifiers it announces, in report order. Titles shorter than the
// configured minimum duration are already absent from the engine's output.
func (c *Client) ScanTitles(ctx context.Context, folder string) ([]string, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, errors.New("scan folder required")
	}

	// Title announcements arrive on the diagnostic stream; stdout carries
	// encode payload data and is discarded.
	var diagnostic strings.Builder
	err := c.exec.Run(ctx, c.binary, c.ScanCommand(folder), nil, func(line string) {
		diagnostic.WriteString(line)
		diagnostic.WriteByte('\n')
	})
	if err != nil {
		return nil, fmt.Errorf("handbrake scan %s: %w", folder, err)
	}

	return ParseTitles(diagnostic.String()), nil
}

// Transcode runs the engine for a single title, forwarding output to onLine
// when provided.
func (c *Client) Transcode(ctx context.Context, folder, title, output string, onLine func(string)) error {
	if strings.TrimSpace(output) == "" {
		return errors.New("output path required")
	}
	err := c.exec.Run(ctx, c.binary, c.TranscodeCommand(folder, title, output), onLine, onLine)
	if err != nil {
		return fmt.Errorf("handbrake transcode title %s of %s: %w", title, folder, err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout, onStderr func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			if forward != nil {
				forward(scanner.Text())
			}
		}
		// Read errors are deliberately dropped: scan output may contain
		// undecodable noise and correctness depends only on the decodable
		// title lines.
	}

	wg.Add(2)
	go scan(stdout, onStdout)
	go scan(stderr, onStderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
