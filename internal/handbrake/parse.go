package handbrake

import (
	"regexp"
	"strings"
)

// titlePattern matches HandBrake title announcement lines: a "+" continuation
// marker, the literal word "title", a numeric identifier, and a colon.
// Any change to the engine's output format is a contract change for this
// pattern; keep the fixtures in parse_test.go in sync with the engine.
var titlePattern = regexp.MustCompile(`^\+ title (\d+):`)

// ParseTitles extracts title identifiers from scan output, preserving the
// order in which the engine announced them. Undecodable bytes are dropped
// before matching rather than failing the parse.
func ParseTitles(output string) []string {
	output = strings.ToValidUTF8(output, "")

	var titles []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if match := titlePattern.FindStringSubmatch(line); match != nil {
			titles = append(titles, match[1])
		}
	}
	return titles
}
