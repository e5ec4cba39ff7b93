package gate

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DataDir is an explicit handle for the directory where the harness
// accumulates comparison data between measurement runs. The orchestrator
// clears it before the reconfirmation pass so the second measurement cycle
// is statistically independent of the first.
type DataDir struct {
	path string
}

// NewDataDir returns a handle for the comparison-data directory at path.
func NewDataDir(path string) DataDir {
	return DataDir{path: path}
}

// Path returns the directory location.
func (d DataDir) Path() string {
	return d.path
}

// Clear removes all accumulated comparison data. Clearing a directory that
// does not exist yet is a no-op.
func (d DataDir) Clear() error {
	logrus.Debugf("Clearing comparison data in %q", d.path)

	if err := os.RemoveAll(d.path); err != nil {
		return errors.Wrapf(err, "cannot clear comparison data in %q", d.path)
	}
	return nil
}
