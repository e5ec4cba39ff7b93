package executor

import (
	"bufio"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/perfgate/perfgate/pkg/utils/fs"
)

// LogSuccessfulExecution is helper function for logging standard output and
// standard error file names of a finished command.
func LogSuccessfulExecution(whatWasExecuted string, handle TaskHandle) {
	id := rand.Intn(9999)

	var stdoutFileName string
	var stderrFileName string

	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		logrus.Errorf("Could not read stdout filename for command %s", whatWasExecuted)
		stdoutFileName = fmt.Sprintf("%v", err)
	} else {
		stdoutFileName = stdoutFile.Name()
	}

	stderrFile, err := handle.StderrFile()
	if err != nil {
		logrus.Errorf("Could not read stderr filename for command %s", whatWasExecuted)
		stderrFileName = fmt.Sprintf("%v", err)
	} else {
		stderrFileName = stderrFile.Name()
	}

	logrus.Debugf("%4d Process %q has ended", id, whatWasExecuted)
	logrus.Debugf("%4d Stdout stored in %q", id, stdoutFileName)
	logrus.Debugf("%4d Stderr stored in %q", id, stderrFileName)

	exitCode, err := handle.ExitCode()
	if err != nil {
		logrus.Debugf("%4d Could not read exit code: %v", id, err)
	} else {
		logrus.Debugf("%4d Exit code: %d", id, exitCode)
	}
}

// LogUnsuccessfulExecution is helper function for logging the tail of standard
// output and standard error of a command that ended prematurely.
func LogUnsuccessfulExecution(whatWasExecuted string, handle TaskHandle) {
	var stdoutFileName string
	var stderrFileName string

	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		logrus.Errorf("Could not read stdout filename for command %s", whatWasExecuted)
		stdoutFileName = fmt.Sprintf("%v", err)
	} else {
		stdoutFileName = stdoutFile.Name()
	}

	stderrFile, err := handle.StderrFile()
	if err != nil {
		logrus.Errorf("Could not read stderr filename for command %s", whatWasExecuted)
		stderrFileName = fmt.Sprintf("%v", err)
	} else {
		stderrFileName = stderrFile.Name()
	}

	lineCount := 3
	stdoutTail, err := fs.ReadTail(stdoutFileName, lineCount)
	if err != nil {
		stdoutTail = fmt.Sprintf("%v", err)
	}
	stderrTail, err := fs.ReadTail(stderrFileName, lineCount)
	if err != nil {
		stderrTail = fmt.Sprintf("%v", err)
	}

	id := rand.Intn(9999)
	logrus.Errorf("%4d Command %q might have ended prematurely", id, whatWasExecuted)
	logrus.Errorf("%4d Stdout stored in %q", id, stdoutFileName)
	logrus.Errorf("%4d Stderr stored in %q", id, stderrFileName)
	logrus.Errorf("%4d Last %d lines of stdout", id, lineCount)
	ErrorLogLines(strings.NewReader(stdoutTail), id)
	logrus.Errorf("%4d Last %d lines of stderr", id, lineCount)
	ErrorLogLines(strings.NewReader(stderrTail), id)

	exitCode, err := handle.ExitCode()
	if err != nil {
		logrus.Errorf("%4d Could not read exit code: %v", id, err)
	} else {
		logrus.Errorf("%4d Exit code: %d", id, exitCode)
	}
}

// ErrorLogLines takes reader and some ID (eg. PID) and prints each line
// from reader in a separate log.Errorf("%4d <line>", logID, line).
// Rationale behind this function is fact, that logrus does not support
// multi-line logs.
func ErrorLogLines(r *strings.Reader, logID int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logrus.Errorf("%4d %s", logID, scanner.Text())
	}
	err := scanner.Err()
	if err != nil {
		logrus.Errorf("%4d Printing from reader failed: %q", logID, err.Error())
	}
}
