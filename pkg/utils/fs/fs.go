package fs

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadTail returns the last lineCount lines of the file at filePath.
func ReadTail(filePath string, lineCount int) (tail string, err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "could not read tail of %q", filePath)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > lineCount {
		lines = lines[len(lines)-lineCount:]
	}

	return strings.Join(lines, "\n"), nil
}
