package views

import (
	"fmt"

	"github.com/hance08/bankist/internal/observability"
	"github.com/pterm/pterm"
)

// RenderOperationTally prints how many operations succeeded or were refused
// during the session.
func RenderOperationTally(counts []observability.OperationCount) error {
	if len(counts) == 0 {
		return nil
	}

	tableData := pterm.TableData{{"Operation", "Outcome", "Count"}}
	for _, c := range counts {
		outcome := c.Outcome
		switch c.Outcome {
		case observability.OutcomeSuccess:
			outcome = pterm.Green(c.Outcome)
		case observability.OutcomeRejected:
			outcome = pterm.Yellow(c.Outcome)
		case observability.OutcomeError:
			outcome = pterm.Red(c.Outcome)
		}
		tableData = append(tableData, []string{c.Operation, outcome, fmt.Sprintf("%.0f", c.Count)})
	}

	pterm.DefaultSection.Println("Session activity")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
