// Package gate implements the regression confirmation protocol of the
// benchmark gate. Benchmark timing is inherently noisy: thermal throttling,
// scheduler jitter and background load make a single regressed measurement
// untrustworthy. The gate therefore accepts a regression as real only when
// it reproduces for the same benchmark across two independent full
// measurement cycles.
package gate

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/perfgate/perfgate/pkg/benchlog"
)

// Gate drives the two-pass detect-then-reconfirm protocol.
type Gate struct {
	harness Harness
	data    DataDir
	session *Session
}

// New returns a Gate using the given harness, comparison-data handle and
// artifact session.
func New(harness Harness, data DataDir, session *Session) *Gate {
	return &Gate{harness: harness, data: data, session: session}
}

// Run executes the confirmation protocol and returns its result.
//
// The first pass measures the baseline and the candidate. When no benchmark
// is flagged, the gate passes. Otherwise the comparison data is cleared and
// the whole cycle repeats; only benchmarks flagged in both passes count as
// confirmed, anything else is treated as measurement noise.
//
// A harness execution failure in either pass aborts with an error and is
// never mapped onto a pass/fail decision.
func (g *Gate) Run() (ConfirmationResult, error) {
	firstPass, err := g.measure(1)
	if err != nil {
		return ConfirmationResult{}, err
	}

	if firstPass.regressed.Empty() {
		logrus.Info("No regression detected")
		return noRegression(firstPass.run.ExitCode), nil
	}

	logrus.Warnf("Regression detected for %s; reconfirming with a fresh measurement cycle",
		strings.Join(firstPass.regressed.Names(), ", "))

	// The reconfirmation pass must be statistically independent of the
	// first, so the harness has to start the comparison from scratch.
	if err := g.data.Clear(); err != nil {
		return ConfirmationResult{}, err
	}

	secondPass, err := g.measure(2)
	if err != nil {
		return ConfirmationResult{}, err
	}

	if secondPass.regressed.Empty() {
		logrus.Info("Regression did not reproduce on the second pass")
		return fluke(firstPass.regressed), nil
	}

	confirmed := firstPass.regressed.Intersect(secondPass.regressed)
	if confirmed.Empty() {
		// Different benchmarks regressed each time. A stable regression
		// reproduces for the same benchmark.
		logrus.Infof("Second pass flagged %s instead; no benchmark regressed twice",
			strings.Join(secondPass.regressed.Names(), ", "))
		return fluke(firstPass.regressed), nil
	}

	return confirmedRegression(confirmed), nil
}

type passResult struct {
	run       CandidateRun
	regressed benchlog.RegressionSet
}

// measure runs one full measurement cycle: baseline reference first, then
// the candidate with captured output fed through normalization and
// extraction.
func (g *Gate) measure(pass int) (passResult, error) {
	if err := g.harness.MeasureBaseline(pass); err != nil {
		return passResult{}, err
	}

	run, err := g.harness.MeasureCandidate(pass)
	if err != nil {
		return passResult{}, err
	}

	regressed := benchlog.ExtractRegressed(benchlog.NormalizeLines(run.Lines))

	if err := g.session.WriteRegressedNames(pass, regressed); err != nil {
		// Audit artifact only; the extraction result stands.
		logrus.Warnf("Cannot write regressed names artifact: %v", err)
	}

	return passResult{run: run, regressed: regressed}, nil
}
