package benchlog

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// regressedMarker is the literal substring the harness prints in a
	// benchmark's verdict line when that benchmark got slower.
	regressedMarker = "regressed"

	// verdictLinePrefix marks machine-readable verdict lines of the form
	// "benchmark-verdict\t<name>\t<verdict>". Harnesses that emit them save
	// us the textual look-back heuristic below.
	verdictLinePrefix = "benchmark-verdict\t"

	// nameLookbackWindow is how many lines before a verdict line the harness
	// prints the benchmark's quoted display name.
	nameLookbackWindow = 3
)

var quotedSegment = regexp.MustCompile(`"([^"]*)"`)

// ExtractRegressed scans normalized harness output and returns the set of
// benchmark names whose verdict is regressed.
//
// Two formats are understood. Machine-readable verdict lines are consumed
// directly. For legacy human-readable output, every line containing the
// regressed marker is associated with a benchmark by searching the preceding
// nameLookbackWindow lines for a double-quoted display name; the canonical
// identifier is the last whitespace-delimited token inside the quotes, as
// display names may be multi-word with the discriminating identifier last.
//
// A marker line with no parseable name in its window is logged and skipped.
// Output with no markers at all yields an empty set.
func ExtractRegressed(lines []string) RegressionSet {
	set := NewRegressionSet()

	for i, line := range lines {
		if strings.HasPrefix(line, verdictLinePrefix) {
			name, verdict, ok := parseVerdictLine(line)
			if !ok {
				logrus.Warnf("Skipping malformed verdict line: %q", line)
				continue
			}
			if strings.Contains(verdict, regressedMarker) {
				set.Add(name)
			}
			continue
		}

		if !strings.Contains(line, regressedMarker) {
			continue
		}

		name, ok := nameBeforeMarker(lines, i)
		if !ok {
			logrus.Warnf("No quoted benchmark name found within %d lines before regressed marker %q; skipping",
				nameLookbackWindow, line)
			continue
		}
		set.Add(name)
	}

	return set
}

// parseVerdictLine splits a machine-readable verdict line into benchmark name
// and verdict.
func parseVerdictLine(line string) (name string, verdict string, ok bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 || fields[1] == "" {
		return "", "", false
	}
	return fields[1], fields[2], true
}

// nameBeforeMarker searches the lines directly preceding the marker line for
// a quoted benchmark display name and returns its canonical identifier.
// The nearest preceding line with a quoted segment wins; within the quotes
// the last whitespace-delimited token is the identifier.
func nameBeforeMarker(lines []string, marker int) (string, bool) {
	for i := marker - 1; i >= 0 && i >= marker-nameLookbackWindow; i-- {
		matches := quotedSegment.FindAllStringSubmatch(lines[i], -1)
		if len(matches) == 0 {
			continue
		}

		// Display names may span several quoted segments; the last one
		// carries the discriminating identifier.
		quoted := matches[len(matches)-1][1]
		tokens := strings.Fields(quoted)
		if len(tokens) == 0 {
			continue
		}
		return tokens[len(tokens)-1], true
	}

	return "", false
}
