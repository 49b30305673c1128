package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// budgetStatusLabel maps a standing to its user-facing label.
func budgetStatusLabel(s tracker.BudgetStatus) string {
	switch s {
	case tracker.BudgetUntracked:
		return "no limit"
	case tracker.BudgetOverNoLimit:
		return "over (no limit set)"
	case tracker.BudgetOnTrack:
		return "on track"
	case tracker.BudgetNearLimit:
		return "near limit"
	case tracker.BudgetOverLimit:
		return "over limit"
	}
	return string(s)
}

// BudgetMarkdown renders the budget report to a markdown string.
func BudgetMarkdown(r *tracker.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget")

	doc.H2("Monthly Budget")
	line := fmt.Sprintf("%s spent of %s — %s left", money(r.MonthSpent, r.Currency),
		money(r.MonthlyBudget, r.Currency), r.Survival)
	if r.Critical {
		line += " (critical)"
	}
	doc.PlainText(line)

	if r.Overview.TotalLimit.IsPositive() {
		doc.H2("Tracked Categories")
		doc.Table(md.TableSet{
			Header: []string{"Total Limit", "Total Spent", "Remaining", "Used"},
			Rows: [][]string{{
				money(r.Overview.TotalLimit, r.Currency),
				money(r.Overview.TotalSpent, r.Currency),
				money(r.Overview.Remaining, r.Currency),
				fmt.Sprintf("%d%%", r.Overview.PercentUsed.Rounded()),
			}},
		})
	}

	doc.H2("Per Category")
	rows := make([][]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		s := l.Standing
		limit := "-"
		if s.Limit.IsPositive() {
			limit = money(s.Limit, r.Currency)
		}
		rows = append(rows, []string{
			l.Category,
			limit,
			money(s.Spent, r.Currency),
			fmt.Sprintf("%d%%", s.PercentSpent.Rounded()),
			budgetStatusLabel(s.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Limit", "Spent", "Used", "Status"},
		Rows:   rows,
	})

	return doc.String()
}
