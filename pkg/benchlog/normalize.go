// Package benchlog turns raw benchmark harness output into the set of
// benchmark names the harness reported as regressed. The harness writes for
// humans: colored terminal output with a benchmark's quoted display name
// followed, a few lines later, by a verdict line. This package strips the
// terminal noise and recovers the (name, verdict) association.
package benchlog

import "regexp"

// escapeSequence matches ANSI terminal escape sequences: ESC, '[', one or
// more characters in [0-9;] and a terminal letter.
var escapeSequence = regexp.MustCompile(`\x1b\[[0-9;]+[A-Za-z]`)

// StripEscapes removes every terminal escape sequence from text, leaving all
// other characters untouched. Normalizing already clean text is a no-op.
func StripEscapes(text string) string {
	return escapeSequence.ReplaceAllString(text, "")
}

// NormalizeLines applies StripEscapes to every line, preserving order.
func NormalizeLines(lines []string) []string {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = StripEscapes(line)
	}
	return normalized
}
