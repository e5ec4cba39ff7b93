package gate

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/perfgate/perfgate/pkg/executor"
)

// CandidateRun holds what the gate needs from one candidate measurement: the
// harness's own exit code and its captured output with control codes intact.
type CandidateRun struct {
	ExitCode int
	Lines    []string
	LogPath  string
}

// Harness runs the external benchmark suite against one variant at a time.
// Measurements are blocking and strictly sequential; concurrent benchmark
// execution would invalidate the timing comparison.
type Harness interface {
	// MeasureBaseline runs the suite against the trunk variant to produce
	// the reference comparison data for given pass.
	MeasureBaseline(pass int) error
	// MeasureCandidate runs the suite against the branch variant with output
	// captured verbatim to the session's log artifact for given pass.
	MeasureCandidate(pass int) (CandidateRun, error)
}

// HarnessConfig describes how to invoke the external harness executable.
type HarnessConfig struct {
	// Command is the harness executable with its fixed arguments.
	Command string
	// BaselineArg selects the trunk measurement mode.
	BaselineArg string
	// CandidateArg selects the branch measurement mode.
	CandidateArg string
}

// DefaultHarnessConfig returns the configuration taken from command line
// flags and environment variables.
func DefaultHarnessConfig() HarnessConfig {
	return HarnessConfig{
		Command:      HarnessCommandFlag.Value(),
		BaselineArg:  HarnessBaselineArgFlag.Value(),
		CandidateArg: HarnessCandidateArgFlag.Value(),
	}
}

// execHarness implements Harness on top of an executor.
type execHarness struct {
	exec    executor.Executor
	config  HarnessConfig
	session *Session
}

// NewHarness returns a Harness invoking the configured executable through
// the given executor.
func NewHarness(exec executor.Executor, config HarnessConfig, session *Session) Harness {
	return &execHarness{exec: exec, config: config, session: session}
}

func (h *execHarness) MeasureBaseline(pass int) error {
	command := harnessCommand(h.config.Command, h.config.BaselineArg)
	logrus.Infof("Measuring baseline variant (pass %d): %s", pass, command)

	handle, err := h.exec.Execute(command)
	if err != nil {
		return errors.Wrap(err, "benchmark harness failed to start")
	}
	handle.Wait(0)

	exitCode, err := handle.ExitCode()
	if err != nil {
		return errors.Wrap(err, "cannot read harness exit code")
	}
	if exitCode != 0 {
		executor.LogUnsuccessfulExecution(command, handle)
		h.archiveOutput(handle, h.session.BaselineLogPath(pass))
		return errors.Errorf("baseline measurement failed with exit code %d", exitCode)
	}

	executor.LogSuccessfulExecution(command, handle)
	return h.archiveOutput(handle, h.session.BaselineLogPath(pass))
}

func (h *execHarness) MeasureCandidate(pass int) (CandidateRun, error) {
	command := harnessCommand(h.config.Command, h.config.CandidateArg)
	logrus.Infof("Measuring candidate variant (pass %d): %s", pass, command)

	handle, err := h.exec.Execute(command)
	if err != nil {
		return CandidateRun{}, errors.Wrap(err, "benchmark harness failed to start")
	}
	handle.Wait(0)

	exitCode, err := handle.ExitCode()
	if err != nil {
		return CandidateRun{}, errors.Wrap(err, "cannot read harness exit code")
	}
	if exitCode < 0 {
		executor.LogUnsuccessfulExecution(command, handle)
		return CandidateRun{}, errors.Errorf("benchmark harness was terminated by signal %d", -exitCode)
	}

	lines, err := capturedLines(handle)
	if err != nil {
		return CandidateRun{}, err
	}

	executor.LogSuccessfulExecution(command, handle)

	logPath := h.session.CandidateLogPath(pass)
	if err := h.archiveOutput(handle, logPath); err != nil {
		return CandidateRun{}, err
	}

	return CandidateRun{ExitCode: exitCode, Lines: lines, LogPath: logPath}, nil
}

// archiveOutput closes the handle's capture files and moves the stdout
// capture into the session artifact area. The stderr capture is dropped.
func (h *execHarness) archiveOutput(handle executor.TaskHandle, logPath string) error {
	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		return errors.Wrap(err, "cannot locate captured harness output")
	}
	stdoutName := stdoutFile.Name()

	if err := handle.Clean(); err != nil {
		return err
	}
	if err := os.Rename(stdoutName, logPath); err != nil {
		return errors.Wrapf(err, "cannot archive captured log to %q", logPath)
	}

	// Stdout is archived already, so this only drops the stderr capture.
	return handle.EraseOutput()
}

// capturedLines reads back the verbatim captured stdout of a finished run.
func capturedLines(handle executor.TaskHandle) ([]string, error) {
	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		return nil, errors.Wrap(err, "cannot open captured harness output")
	}

	var lines []string
	scanner := bufio.NewScanner(stdoutFile)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read captured harness output")
	}

	return lines, nil
}

func harnessCommand(command string, variantArg string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", command, variantArg))
}
