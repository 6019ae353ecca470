package display

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryRow holds the per-directory counters shown in the run summary.
type SummaryRow struct {
	Dir     string
	Merged  int
	Skipped int
	Failed  int
}

// RenderSummary renders the per-directory summary table with a totals
// footer. Numeric columns are right-aligned.
func RenderSummary(rows []SummaryRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Directory", "Merged", "Skipped", "Failed"})

	var merged, skipped, failed int
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Dir, r.Merged, r.Skipped, r.Failed})
		merged += r.Merged
		skipped += r.Skipped
		failed += r.Failed
	}
	tw.AppendFooter(table.Row{
		"Total",
		strconv.Itoa(merged),
		strconv.Itoa(skipped),
		strconv.Itoa(failed),
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
