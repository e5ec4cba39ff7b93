package gate

import (
	"github.com/perfgate/perfgate/pkg/benchlog"
)

// ResultKind enumerates the possible outcomes of the confirmation protocol.
type ResultKind int

const (
	// NoRegression means no benchmark was flagged on the first pass.
	NoRegression ResultKind = iota
	// ConfirmedRegression means at least one benchmark regressed in both
	// measurement passes.
	ConfirmedRegression
	// Fluke means a regression was observed once but did not reproduce.
	Fluke
)

// ConfirmationResult is the single, immutable outcome of one gate
// invocation. Exactly one is produced per invocation and it is the sole
// input of Report.
type ConfirmationResult struct {
	Kind ResultKind
	// HarnessExitCode is the candidate measurement's own exit code,
	// propagated when no regression was found.
	HarnessExitCode int
	// Names holds the confirmed regressions. Set for ConfirmedRegression.
	Names benchlog.RegressionSet
	// FirstPassNames holds the benchmarks flagged on the first pass.
	// Set for Fluke.
	FirstPassNames benchlog.RegressionSet
}

func noRegression(harnessExitCode int) ConfirmationResult {
	return ConfirmationResult{Kind: NoRegression, HarnessExitCode: harnessExitCode}
}

func confirmedRegression(names benchlog.RegressionSet) ConfirmationResult {
	return ConfirmationResult{Kind: ConfirmedRegression, Names: names}
}

func fluke(firstPassNames benchlog.RegressionSet) ConfirmationResult {
	return ConfirmationResult{Kind: Fluke, FirstPassNames: firstPassNames}
}
