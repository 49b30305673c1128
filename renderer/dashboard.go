package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// DashboardMarkdown renders the dashboard report to a markdown string.
func DashboardMarkdown(r *tracker.DashboardReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard (%s)", r.Timeframe))

	doc.Table(md.TableSet{
		Header: []string{"", "Amount", "vs last month"},
		Rows: [][]string{
			{"Balance", money(r.Totals.Balance, r.Currency), r.BalanceDelta.SignedString()},
			{"Income", money(r.Totals.Income, r.Currency), r.IncomeDelta.SignedString()},
			{"Expenses", money(r.Totals.Expense, r.Currency), r.ExpenseDelta.SignedString()},
		},
	})

	doc.H2("Monthly Budget")
	survival := fmt.Sprintf("%s of %s left", r.Survival, money(r.MonthlyBudget, r.Currency))
	if r.Critical {
		survival += " (critical)"
	}
	doc.PlainText(survival)

	if r.Goals.TotalTarget.IsPositive() {
		doc.H2("Goals")
		doc.PlainTextf("%s saved of %s — %d complete, %d active, %d overachieved",
			money(r.Goals.TotalSaved, r.Currency), money(r.Goals.TotalTarget, r.Currency),
			r.Goals.Completed, r.Goals.Active, r.Goals.Overachieved)
	}

	if len(r.Breakdown.Shares) > 0 {
		doc.H2("Spending by Category")
		rows := make([][]string, 0, len(r.Breakdown.Shares))
		for _, s := range r.Breakdown.Shares {
			rows = append(rows, []string{s.Category, money(s.Amount, r.Currency), fmt.Sprintf("%d%%", s.Percent)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Spent", "Share"},
			Rows:   rows,
		})
	}

	if len(r.Recent) > 0 {
		doc.H2("Recent Transactions")
		doc.Table(md.TableSet{
			Header: []string{"Date", "Category", "Description", "Amount"},
			Rows:   transactionRows(r.Recent, r.Currency),
		})
	}

	return doc.String()
}

// transactionRows formats transactions as table rows with signed amounts.
func transactionRows(txns []tracker.Transaction, currency string) [][]string {
	rows := make([][]string, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Category,
			tx.Description,
			signedMoney(tx.Signed(), currency),
		})
	}
	return rows
}
