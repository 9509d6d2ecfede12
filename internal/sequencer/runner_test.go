package sequencer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"seasonbrake/internal/sequencer"
)

type stubTranscoder struct {
	err      error
	failOn   string
	executed []string
}

func (s *stubTranscoder) TranscodeCommand(folder, title, output string) []string {
	return []string{"--input", folder, "--title", title, "--output", output}
}

func (s *stubTranscoder) CommandLine(args []string) string {
	return "HandBrakeCLI " + strings.Join(args, " ")
}

func (s *stubTranscoder) Transcode(ctx context.Context, folder, title, output string, onLine func(string)) error {
	if s.err != nil && (s.failOn == "" || s.failOn == output) {
		return s.err
	}
	s.executed = append(s.executed, output)
	return nil
}

func twoJobPlan() *sequencer.Plan {
	return &sequencer.Plan{
		Jobs: []sequencer.Job{
			{Folder: "/video/disc1", Title: "5", Episode: 1, OutputName: "s01e01.mkv", OutputPath: "/tv/s01e01.mkv"},
			{Folder: "/video/disc1", Title: "12", Episode: 2, OutputName: "s01e02.mkv", OutputPath: "/tv/s01e02.mkv"},
		},
		NextEpisode: 3,
	}
}

func TestRunDryRunConstructsWithoutExecuting(t *testing.T) {
	transcoder := &stubTranscoder{}
	runner := sequencer.NewRunner(transcoder, nil, false)

	result, err := runner.Run(context.Background(), twoJobPlan())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(transcoder.executed) != 0 {
		t.Fatalf("dry run must not invoke the engine, ran %v", transcoder.executed)
	}
	if result.Executed {
		t.Fatal("result should report execution disabled")
	}
	if result.Transcoded != 0 {
		t.Fatalf("expected 0 transcoded, got %d", result.Transcoded)
	}
	if result.LastOutput != "/tv/s01e02.mkv" {
		t.Fatalf("unexpected last output: %q", result.LastOutput)
	}
	if result.NextEpisode != 3 {
		t.Fatalf("unexpected next episode: %d", result.NextEpisode)
	}
}

func TestRunExecutesJobsInOrder(t *testing.T) {
	transcoder := &stubTranscoder{}
	runner := sequencer.NewRunner(transcoder, nil, true)

	result, err := runner.Run(context.Background(), twoJobPlan())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Transcoded != 2 {
		t.Fatalf("expected 2 transcoded, got %d", result.Transcoded)
	}
	if len(transcoder.executed) != 2 ||
		transcoder.executed[0] != "/tv/s01e01.mkv" ||
		transcoder.executed[1] != "/tv/s01e02.mkv" {
		t.Fatalf("jobs executed out of order: %v", transcoder.executed)
	}
}

func TestRunAbortsOnEngineFailure(t *testing.T) {
	transcoder := &stubTranscoder{err: errors.New("encode failed"), failOn: "/tv/s01e01.mkv"}
	runner := sequencer.NewRunner(transcoder, nil, true)

	_, err := runner.Run(context.Background(), twoJobPlan())
	if !errors.Is(err, sequencer.ErrEngine) {
		t.Fatalf("expected ErrEngine, got: %v", err)
	}
	if len(transcoder.executed) != 0 {
		t.Fatalf("no later job may run after a failure: %v", transcoder.executed)
	}
}

func TestRunEmptyPlan(t *testing.T) {
	runner := sequencer.NewRunner(&stubTranscoder{}, nil, true)
	result, err := runner.Run(context.Background(), &sequencer.Plan{NextEpisode: 5})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.LastOutput != "" || result.Transcoded != 0 || result.NextEpisode != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
