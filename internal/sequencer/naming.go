package sequencer

import "fmt"

// EpisodeFileName builds an output file name from the configured prefix, the
// episode number zero-padded to a minimum width of two digits, and the
// extension. Episodes of 100 and beyond keep all their digits; the width
// grows, it never truncates.
func EpisodeFileName(prefix string, episode int, extension string) string {
	return fmt.Sprintf("%s%02d%s", prefix, episode, extension)
}
