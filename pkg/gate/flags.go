package gate

import (
	"github.com/perfgate/perfgate/pkg/conf"
)

var (
	// HarnessCommandFlag is the benchmark harness invocation; the variant
	// mode argument is appended per measured variant.
	HarnessCommandFlag = conf.NewStringFlag("harness_command", "Benchmark harness command measuring one variant per run", "./benchmark-harness")
	// HarnessBaselineArgFlag selects the trunk measurement mode.
	HarnessBaselineArgFlag = conf.NewStringFlag("harness_baseline_arg", "Harness argument selecting the trunk (baseline) variant", "--variant=trunk")
	// HarnessCandidateArgFlag selects the branch measurement mode.
	HarnessCandidateArgFlag = conf.NewStringFlag("harness_candidate_arg", "Harness argument selecting the branch (candidate) variant", "--variant=branch")
	// DataDirFlag points at the harness comparison-data directory. It is
	// cleared before the reconfirmation pass.
	DataDirFlag = conf.NewStringFlag("data_dir", "Directory where the harness accumulates comparison data between runs", "benchmark-data")
	// ArtifactDirFlag is the root under which each invocation creates its
	// artifact directory.
	ArtifactDirFlag = conf.NewStringFlag("artifact_dir", "Root directory for captured logs and extracted regression listings", "perfgate-artifacts")
)
