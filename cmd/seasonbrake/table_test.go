package main

import (
	"strings"
	"testing"

	"seasonbrake/internal/sequencer"
)

func TestPlanTableRendersJobsInOrder(t *testing.T) {
	jobs := []sequencer.Job{
		{Folder: "/backups/d1", Title: "3", Episode: 1, OutputName: "s01e01.mkv"},
		{Folder: "/backups/d2", Title: "68", Episode: 2, OutputName: "s01e02.mkv"},
	}

	out := planTable(jobs)
	for _, want := range []string{"EPISODE", "OUTPUT", "SOURCE", "TITLE", "s01e01.mkv", "/backups/d2", "68"} {
		if !strings.Contains(out, want) {
			t.Fatalf("plan table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "s01e01.mkv") > strings.Index(out, "s01e02.mkv") {
		t.Fatalf("jobs rendered out of execution order:\n%s", out)
	}
}

func TestTitlesTableNumbersRows(t *testing.T) {
	out := titlesTable([]string{"3", "68"})

	for _, want := range []string{"#", "TITLE", "68"} {
		if !strings.Contains(out, want) {
			t.Fatalf("titles table missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	var rows int
	for _, line := range lines {
		if strings.Contains(line, "68") {
			rows++
		}
	}
	if rows != 1 {
		t.Fatalf("expected exactly one row for title 68:\n%s", out)
	}
}

func TestSettingsTableRendersPairs(t *testing.T) {
	out := settingsTable([][2]string{
		{"season.prefix", "s01e"},
		{"season.start_episode", "9"},
	})

	for _, want := range []string{"SETTING", "VALUE", "season.prefix", "s01e", "9"} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings table missing %q:\n%s", want, out)
		}
	}
}
