package gate

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/perfgate/perfgate/pkg/executor"
)

func TestExecHarness(t *testing.T) {
	Convey("While measuring through the exec harness", t, func() {
		session, err := NewSession(t.TempDir())
		So(err, ShouldBeNil)

		local := executor.NewLocal(session.Dir)

		Convey("When the candidate harness prints a regression verdict", func() {
			config := HarnessConfig{
				Command:      `printf 'Benchmarking "deriv"\ntime: [398 ms]\nPerformance has regressed.\n'`,
				CandidateArg: "",
			}
			harness := NewHarness(local, config, session)

			run, err := harness.MeasureCandidate(1)
			So(err, ShouldBeNil)

			Convey("The captured lines should be returned verbatim", func() {
				So(run.ExitCode, ShouldEqual, 0)
				So(run.Lines, ShouldResemble, []string{
					`Benchmarking "deriv"`,
					"time: [398 ms]",
					"Performance has regressed.",
				})
			})

			Convey("The captured log should be archived in the session directory", func() {
				So(run.LogPath, ShouldEqual, session.CandidateLogPath(1))
				content, err := os.ReadFile(run.LogPath)
				So(err, ShouldBeNil)
				So(string(content), ShouldContainSubstring, "Performance has regressed.")
			})
		})

		Convey("When the candidate harness exits non-zero", func() {
			config := HarnessConfig{Command: "exit 4"}
			harness := NewHarness(local, config, session)

			run, err := harness.MeasureCandidate(1)

			Convey("The exit code should be reported, not treated as a failure", func() {
				So(err, ShouldBeNil)
				So(run.ExitCode, ShouldEqual, 4)
			})
		})

		Convey("When the baseline harness succeeds", func() {
			config := HarnessConfig{
				Command:     "echo reference data collected",
				BaselineArg: "",
			}
			harness := NewHarness(local, config, session)

			err := harness.MeasureBaseline(1)
			So(err, ShouldBeNil)

			Convey("The baseline log should be archived", func() {
				content, err := os.ReadFile(session.BaselineLogPath(1))
				So(err, ShouldBeNil)
				So(string(content), ShouldEqual, "reference data collected\n")
			})
		})

		Convey("When the baseline harness fails", func() {
			config := HarnessConfig{Command: "exit 127"}
			harness := NewHarness(local, config, session)

			err := harness.MeasureBaseline(1)

			Convey("The failure should surface as an error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "exit code 127")
			})
		})

		Convey("The variant mode argument is appended to the command", func() {
			config := HarnessConfig{
				Command:      "echo running",
				CandidateArg: "--variant=branch",
			}
			harness := NewHarness(local, config, session)

			run, err := harness.MeasureCandidate(1)
			So(err, ShouldBeNil)
			So(run.Lines, ShouldResemble, []string{"running --variant=branch"})
		})
	})
}

func TestDataDir(t *testing.T) {
	Convey("While using the comparison-data handle", t, func() {
		dir := t.TempDir()
		data := NewDataDir(dir)

		Convey("Clear removes accumulated comparison data", func() {
			err := os.WriteFile(data.Path()+"/estimates.json", []byte("{}"), 0644)
			So(err, ShouldBeNil)

			So(data.Clear(), ShouldBeNil)

			_, err = os.Stat(data.Path())
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Clearing a missing directory is a no-op", func() {
			So(data.Clear(), ShouldBeNil)
			So(data.Clear(), ShouldBeNil)
		})
	})
}
