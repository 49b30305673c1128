package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// CashFlowMarkdown renders the cash-flow report to a markdown string.
func CashFlowMarkdown(r *tracker.CashFlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	y := r.Yearly
	doc.H1(fmt.Sprintf("Cash Flow %d", y.Year))

	doc.Table(md.TableSet{
		Header: []string{"Total Income", "Total Expenses", "Net Flow", "Savings Rate"},
		Rows: [][]string{{
			money(y.TotalIncome, r.Currency),
			money(y.TotalExpense, r.Currency),
			signedMoney(y.NetFlow, r.Currency),
			fmt.Sprintf("%d%%", y.SavingsRate),
		}},
	})

	doc.H2("Monthly")
	rows := make([][]string, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{
			time.Month(i + 1).String(),
			money(y.Income[i], r.Currency),
			money(y.Expense[i], r.Currency),
			signedMoney(y.Net[i], r.Currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expenses", "Net"},
		Rows:   rows,
	})

	doc.H2("Highlights")
	best, worst := "-", "-"
	if y.BestMonth.OK {
		best = fmt.Sprintf("%s (%s)", y.BestMonth.Month, money(y.BestMonth.Amount, r.Currency))
	}
	if y.WorstMonth.OK {
		worst = fmt.Sprintf("%s (%s)", y.WorstMonth.Month, money(y.WorstMonth.Amount, r.Currency))
	}
	doc.Table(md.TableSet{
		Header: []string{"Best Month", "Worst Month", "Avg Income", "Avg Expenses"},
		Rows: [][]string{{
			best, worst,
			money(y.AvgIncome, r.Currency),
			money(y.AvgExpense, r.Currency),
		}},
	})

	d := r.Daily
	doc.H2(fmt.Sprintf("Daily — %s %d", d.Month, d.Year))
	dayRows := make([][]string, 0, len(d.Income))
	for i := range d.Income {
		if d.Income[i].IsZero() && d.Expense[i].IsZero() {
			continue
		}
		dayRows = append(dayRows, []string{
			fmt.Sprintf("%d", i+1),
			money(d.Income[i], r.Currency),
			money(d.Expense[i], r.Currency),
		})
	}
	if len(dayRows) > 0 {
		doc.Table(md.TableSet{
			Header: []string{"Day", "Income", "Expenses"},
			Rows:   dayRows,
		})
	} else {
		doc.PlainText("No activity this month.")
	}

	return doc.String()
}
