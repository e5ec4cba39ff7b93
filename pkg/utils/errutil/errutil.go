package errutil

import (
	"github.com/sirupsen/logrus"
)

// FailureExitCode is the process exit code used for execution failures.
// It must differ from 1, which is reserved for a confirmed benchmark
// regression, so operators can tell "benchmarks got slower" from
// "the pipeline is broken".
const FailureExitCode = 2

// Check the supplied error, log and exit with FailureExitCode if non-nil.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Errorf("%v", err)
		logrus.Exit(FailureExitCode)
	}
}

// CheckWithContext checks the error and exits if it is not nil. Logs additional context information.
func CheckWithContext(err error, context string) {
	if err != nil {
		logrus.Debugf("%s: %+v", context, err)
		logrus.Errorf("%s: %v", context, err)
		logrus.Exit(FailureExitCode)
	}
}
