package gate

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"

	"github.com/perfgate/perfgate/pkg/benchlog"
)

// Session represents the artifact area of a single gate invocation. Captured
// harness logs and extracted-name listings are stored there for human
// inspection; nothing reads them back.
type Session struct {
	ID  string
	Dir string
}

// NewSession creates a uniquely named artifact directory under rootDir.
func NewSession(rootDir string) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate session uuid")
	}

	dir := path.Join(rootDir, time.Now().Format("2006-01-02T15h04m05s_")+id.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "cannot create session directory %q", dir)
	}

	return &Session{ID: id.String(), Dir: dir}, nil
}

// OpenLog creates the session log file used for mirroring console logging.
func (s *Session) OpenLog() (*os.File, error) {
	logFile, err := os.Create(path.Join(s.Dir, "perfgate.log"))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create session log file")
	}
	return logFile, nil
}

// BaselineLogPath returns where the captured baseline output of given
// measurement pass is archived.
func (s *Session) BaselineLogPath(pass int) string {
	return path.Join(s.Dir, fmt.Sprintf("pass%d-baseline.log", pass))
}

// CandidateLogPath returns where the captured candidate output of given
// measurement pass is archived.
func (s *Session) CandidateLogPath(pass int) string {
	return path.Join(s.Dir, fmt.Sprintf("pass%d-candidate.log", pass))
}

// RegressedNamesPath returns where the extracted regressed benchmark names of
// given measurement pass are listed.
func (s *Session) RegressedNamesPath(pass int) string {
	return path.Join(s.Dir, fmt.Sprintf("pass%d-regressed.txt", pass))
}

// WriteRegressedNames stores the extracted names one per line.
func (s *Session) WriteRegressedNames(pass int, set benchlog.RegressionSet) error {
	content := strings.Join(set.Names(), "\n")
	if content != "" {
		content += "\n"
	}

	err := os.WriteFile(s.RegressedNamesPath(pass), []byte(content), 0644)
	return errors.Wrapf(err, "cannot write regressed names for pass %d", pass)
}
