package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// State labels used in the console table.
const (
	StateFailed  = "FAIL"
	StateFlaky   = "FLAKY"
	StatePassed  = "PASS"
	StateSkipped = "SKIP"
	StateUnknown = "-"
)

// State ...
func (o Outcome) State() string {
	switch {
	case o.Flaky():
		return StateFlaky
	case o.AnyFailed:
		return StateFailed
	case o.AnyPassed:
		return StatePassed
	case o.AllSkipped:
		return StateSkipped
	default:
		return StateUnknown
	}
}

// FormatTable renders the outcomes as a console table, with the summary in the footer.
func FormatTable(results Results) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.SetTitle("Playwright results")

	t.AppendHeader(table.Row{"Test", "Project", "File", "Duration", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "File", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	for _, outcome := range results.Outcomes {
		duration := "-"
		if outcome.HasDuration {
			duration = formatDuration(outcome.Duration)
		}
		t.AppendRow(table.Row{outcome.Title, outcome.Project, outcome.File, duration, outcome.State()})
	}

	summary := results.Summary
	switch {
	case summary.Failed > 0:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case summary.Skipped > 0:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("TOTAL %d", summary.Total),
		fmt.Sprintf("PASSED %d", summary.Passed),
		fmt.Sprintf("FAILED %d", summary.Failed),
		fmt.Sprintf("SKIPPED %d", summary.Skipped),
		fmt.Sprintf("FLAKY %d", summary.Flaky),
	})

	t.Render()
	return buf.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}
