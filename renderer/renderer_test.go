package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

var testNow = time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)

// testLedger builds a ledger with activity in July and August 2025.
func testLedger(t *testing.T) *tracker.Ledger {
	t.Helper()
	l := tracker.NewLedger()
	clock := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	for _, tx := range []tracker.Transaction{
		{Type: tracker.Income, Amount: dec(3000), Date: tracker.MustParseDate("2025-08-01"), Category: "Salary", Description: "payroll"},
		{Type: tracker.Expense, Amount: dec(300), Date: tracker.MustParseDate("2025-08-05"), Category: "Food", Description: "groceries"},
		{Type: tracker.Expense, Amount: dec(150), Date: tracker.MustParseDate("2025-08-12"), Category: "Transport", Description: "fuel"},
	} {
		if _, err := l.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

// wants asserts that every fragment appears in the rendered document.
func wants(t *testing.T, doc string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(doc, frag) {
			t.Errorf("missing %q in rendered output:\n%s", frag, doc)
		}
	}
}

func TestDashboardMarkdown(t *testing.T) {
	l := testLedger(t)
	l.AddGoal(tracker.Goal{Name: "Vacation", Target: dec(1000), Current: dec(250)})

	doc := DashboardMarkdown(tracker.NewDashboardReport(l, tracker.ThisMonth, testNow))

	wants(t, doc,
		"# Dashboard (month)",
		"## Monthly Budget",
		"## Goals",
		"## Spending by Category",
		"## Recent Transactions",
		"Balance", "Income", "Expenses",
		"$2550.00", // month balance
		"Food", "Transport",
		"groceries", "fuel",
		"$-150.00", // signed expense in recent activity
	)
}

func TestDashboardMarkdownEmpty(t *testing.T) {
	doc := DashboardMarkdown(tracker.NewDashboardReport(tracker.NewLedger(), tracker.AllTime, testNow))
	// No goals, no spending, no activity: those sections stay out.
	for _, frag := range []string{"## Goals", "## Spending by Category", "## Recent Transactions"} {
		if strings.Contains(doc, frag) {
			t.Errorf("unexpected %q in empty dashboard:\n%s", frag, doc)
		}
	}
	wants(t, doc, "# Dashboard (all)", "## Monthly Budget")
}

func TestCashFlowMarkdown(t *testing.T) {
	l := testLedger(t)
	doc := CashFlowMarkdown(tracker.NewCashFlowReport(l, 2025, time.August, testNow))
	wants(t, doc, "# Cash Flow 2025", "August", "$3000.00", "Best Month")
}

func TestBudgetMarkdown(t *testing.T) {
	l := testLedger(t)
	if err := l.SetCategoryBudget("Food", dec(400)); err != nil {
		t.Fatal(err)
	}
	if err := l.SetCategoryBudget("Transport", dec(100)); err != nil {
		t.Fatal(err)
	}

	doc := BudgetMarkdown(tracker.NewBudgetReport(l, testNow))

	wants(t, doc,
		"# Budget",
		"## Tracked Categories",
		"## Per Category",
		"near limit", // Food at 300 of 400
		"over limit", // Transport at 150 of 100
		"no limit",   // the untracked rest
		"$400.00",
	)
}

func TestGoalsMarkdown(t *testing.T) {
	l := testLedger(t)
	l.AddGoal(tracker.Goal{Name: "Vacation", Target: dec(1000), Current: dec(850)})
	l.AddGoal(tracker.Goal{Name: "Car", Target: dec(200), Current: dec(300)})

	doc := GoalsMarkdown(tracker.NewGoalsReport(l, testNow))

	wants(t, doc,
		"# Savings Goals",
		"Vacation", "Car",
		"almost there",
		"overachieved +50%",
		"Monthly saving capability",
	)
}

func TestGoalsMarkdownNoGoals(t *testing.T) {
	doc := GoalsMarkdown(tracker.NewGoalsReport(tracker.NewLedger(), testNow))
	wants(t, doc, "No goals yet.")
}

func TestInvestmentsMarkdown(t *testing.T) {
	l := tracker.NewLedger()
	if _, err := l.AddInvestment(tracker.Investment{
		Name: "VWCE", Type: "ETF", Amount: dec(1000), CurrentValue: dec(1200),
		Date: tracker.MustParseDate("2025-03-01"),
	}); err != nil {
		t.Fatal(err)
	}

	doc := InvestmentsMarkdown(tracker.NewInvestmentsReport(l, testNow))
	wants(t, doc, "VWCE", "ETF", "$1200.00", "+20.00%")
}

func TestTransactionsMarkdown(t *testing.T) {
	l := testLedger(t)
	r := tracker.NewTransactionsReport(l,
		tracker.Filter{Types: []tracker.TxType{tracker.Expense}},
		tracker.SortSpec{Key: tracker.SortByDate, Order: tracker.Descending},
		testNow)

	doc := TransactionsMarkdown(r)
	wants(t, doc, "groceries", "fuel", "$-450.00")
	if strings.Contains(doc, "payroll") {
		t.Errorf("filtered-out transaction rendered:\n%s", doc)
	}
}
