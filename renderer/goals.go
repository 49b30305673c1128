package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// goalStatusLabel maps a goal status to its user-facing label.
func goalStatusLabel(p tracker.GoalProgress) string {
	switch p.Status {
	case tracker.GoalEarly:
		return "early days"
	case tracker.GoalNear:
		return "almost there"
	case tracker.GoalComplete:
		return "complete"
	case tracker.GoalOver:
		return fmt.Sprintf("overachieved +%d%%", p.OveragePercent)
	}
	return string(p.Status)
}

// goalProjection formats the time-to-goal column.
func goalProjection(p tracker.GoalProgress) string {
	switch {
	case p.Reached():
		return "-"
	case p.NeedsCashFlow:
		return "needs positive cash flow"
	case p.MonthsToGoal == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", p.MonthsToGoal)
	}
}

// GoalsMarkdown renders the goals report to a markdown string.
func GoalsMarkdown(r *tracker.GoalsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goals")

	doc.Table(md.TableSet{
		Header: []string{"Total Saved", "Total Target", "Completed", "Active", "Overachieved"},
		Rows: [][]string{{
			money(r.Summary.TotalSaved, r.Currency),
			money(r.Summary.TotalTarget, r.Currency),
			fmt.Sprintf("%d", r.Summary.Completed),
			fmt.Sprintf("%d", r.Summary.Active),
			fmt.Sprintf("%d", r.Summary.Overachieved),
		}},
	})

	if len(r.Lines) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	doc.PlainTextf("Monthly saving capability: %s", money(r.Potential, r.Currency))

	rows := make([][]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		rows = append(rows, []string{
			l.Goal.Name,
			money(l.Goal.Current, r.Currency),
			money(l.Goal.Target, r.Currency),
			fmt.Sprintf("%d%%", l.Progress.DisplayPercent),
			goalStatusLabel(l.Progress),
			goalProjection(l.Progress),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Target", "Progress", "Status", "Time to Goal"},
		Rows:   rows,
	})

	return doc.String()
}
