package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"seasonbrake/internal/sequencer"
)

// planTable renders the job plan in execution order. Episode and title
// columns are numeric and right-aligned so the sequence reads like a
// countdown; output and source paths stay left-aligned.
func planTable(jobs []sequencer.Job) string {
	tw := newSeasonTable("EPISODE", "OUTPUT", "SOURCE", "TITLE")
	tw.SetColumnConfigs([]table.ColumnConfig{
		numericColumn(1),
		numericColumn(4),
	})
	for _, job := range jobs {
		tw.AppendRow(table.Row{job.Episode, job.OutputName, job.Folder, job.Title})
	}
	return tw.Render()
}

// titlesTable lists scan results, numbered in the order the engine announced
// them.
func titlesTable(titles []string) string {
	tw := newSeasonTable("#", "TITLE")
	tw.SetColumnConfigs([]table.ColumnConfig{
		numericColumn(1),
		numericColumn(2),
	})
	for i, title := range titles {
		tw.AppendRow(table.Row{i + 1, title})
	}
	return tw.Render()
}

// settingsTable renders resolved configuration as setting/value pairs.
func settingsTable(settings [][2]string) string {
	tw := newSeasonTable("SETTING", "VALUE")
	for _, setting := range settings {
		tw.AppendRow(table.Row{setting[0], setting[1]})
	}
	return tw.Render()
}

func newSeasonTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	row := make(table.Row, len(headers))
	for i, header := range headers {
		row[i] = header
	}
	tw.AppendHeader(row)
	return tw
}

func numericColumn(number int) table.ColumnConfig {
	return table.ColumnConfig{
		Number:      number,
		Align:       text.AlignRight,
		AlignHeader: text.AlignLeft,
	}
}
