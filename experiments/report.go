package experiments

import (
	"fmt"
	"io"
	"strconv"

	"dicesim/engine"
	"dicesim/experiments/metrics"

	"github.com/pterm/pterm"
)

// Report writes the final results table and the location of the result log.
func Report(w io.Writer, result engine.Result) error {
	s := result.Summary
	if s.Interrupted {
		fmt.Fprint(w, pterm.Warning.Sprintfln("Exit command received: %d of %d simulations completed", s.Completed, s.Requested))
	}

	table, err := RenderSummary(s)
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	fmt.Fprintln(w, table)
	fmt.Fprint(w, pterm.Success.Sprintfln("Results saved to: %s", result.Path))
	return nil
}

// RenderSummary formats a summary as a table. Averages read "no data" when no
// trial completed.
func RenderSummary(s metrics.Summary) (string, error) {
	avg1, avg2 := "no data", "no data"
	if a1, a2, ok := s.Averages(); ok {
		avg1 = strconv.FormatFloat(a1, 'f', 2, 64)
		avg2 = strconv.FormatFloat(a2, 'f', 2, 64)
	}

	data := pterm.TableData{
		{"", "strat1", "strat2"},
		{"Wins", strconv.Itoa(s.Strat1Wins), strconv.Itoa(s.Strat2Wins)},
		{"Avg bankroll", avg1, avg2},
		{"Equal outcomes", strconv.Itoa(s.Ties()), ""},
		{"Simulations", strconv.Itoa(s.Completed), ""},
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}
