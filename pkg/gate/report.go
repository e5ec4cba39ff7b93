package gate

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report writes the human-readable summary for result to w and returns the
// process exit code the gate should terminate with: 1 for a confirmed
// regression, 0 for a fluke, the harness's own exit code otherwise.
func Report(w io.Writer, result ConfirmationResult) int {
	switch result.Kind {
	case ConfirmedRegression:
		fmt.Fprintln(w, "Regression confirmed across two independent measurement passes:")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Regressed benchmark"})
		for _, name := range result.Names.Names() {
			table.Append([]string{name})
		}
		table.Render()
		return 1

	case Fluke:
		fmt.Fprintf(w, "Benchmarks flagged on the first pass did not reproduce: %s\n",
			strings.Join(result.FirstPassNames.Names(), ", "))
		fmt.Fprintln(w, "Treating the detection as measurement noise.")
		return 0

	default:
		fmt.Fprintf(w, "No regression detected; benchmark harness exited with code %d.\n",
			result.HarnessExitCode)
		return result.HarnessExitCode
	}
}
