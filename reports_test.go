package tracker

import (
	"testing"
	"time"
)

// reportLedger builds a ledger with activity spread over two months.
func reportLedger(t *testing.T) *Ledger {
	t.Helper()
	l := newTestLedger()
	for _, tx := range []Transaction{
		income(3000, "2025-07-01", "Salary"),
		expense(900, "2025-07-10", "Food"),
		income(3000, "2025-08-01", "Salary"),
		expense(300, "2025-08-05", "Food"),
		expense(150, "2025-08-12", "Transport"),
	} {
		if _, err := l.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.SetMonthlyBudget(dec(1000)); err != nil {
		t.Fatal(err)
	}
	return l
}

var reportNow = time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)

func TestNewDashboardReport(t *testing.T) {
	l := reportLedger(t)
	l.AddGoal(Goal{Name: "Vacation", Target: dec(1000), Current: dec(250)})

	r := NewDashboardReport(l, ThisMonth, reportNow)

	if !r.Totals.Income.Equal(dec(3000)) || !r.Totals.Expense.Equal(dec(450)) {
		t.Errorf("month totals: %+v", r.Totals)
	}
	if !r.AllTime.Income.Equal(dec(6000)) || !r.AllTime.Expense.Equal(dec(1350)) {
		t.Errorf("all-time totals: %+v", r.AllTime)
	}

	// July spent 900 of 2100 net; August nets 2550: +21.43%.
	if !r.BalanceDelta.Equal(21.428571) {
		t.Errorf("balance delta: %s", r.BalanceDelta)
	}
	if !r.IncomeDelta.Equal(0) {
		t.Errorf("income delta: %s", r.IncomeDelta)
	}
	if !r.ExpenseDelta.Equal(-50) {
		t.Errorf("expense delta: %s", r.ExpenseDelta)
	}

	// 450 spent of the 1000 budget leaves 55%.
	if !r.Survival.Equal(55) || r.Critical {
		t.Errorf("survival: %s critical=%v", r.Survival, r.Critical)
	}
	if !r.Potential.Equal(dec(2550)) {
		t.Errorf("potential: %s", r.Potential)
	}
	if r.Goals.Active != 1 {
		t.Errorf("goals summary: %+v", r.Goals)
	}

	// Latest activity is newest first and capped.
	if len(r.Recent) != 5 {
		t.Fatalf("recent: got %d", len(r.Recent))
	}
	if r.Recent[0].Date != day("2025-08-12") {
		t.Errorf("recent[0]: %+v", r.Recent[0])
	}
}

func TestNewDashboardReportCapsRecent(t *testing.T) {
	l := newTestLedger()
	for i := range 8 {
		l.AddTransaction(expense(float64(i+1), "2025-08-01", "Food"))
	}
	r := NewDashboardReport(l, AllTime, reportNow)
	if len(r.Recent) != 5 {
		t.Fatalf("recent: got %d, want 5", len(r.Recent))
	}
	// Same-day entries list the latest addition first.
	if !r.Recent[0].Amount.Equal(dec(8)) {
		t.Errorf("recent[0]: %+v", r.Recent[0])
	}
}

func TestNewDashboardReportEmptyLedger(t *testing.T) {
	r := NewDashboardReport(newTestLedger(), ThisMonth, reportNow)
	if !r.Totals.Balance.IsZero() || len(r.Recent) != 0 {
		t.Errorf("empty dashboard: %+v", r)
	}
	// A fresh ledger still has the default budget, fully unspent.
	if !r.Survival.Equal(100) || r.Critical {
		t.Errorf("survival: %s", r.Survival)
	}
}

func TestNewCashFlowReport(t *testing.T) {
	l := reportLedger(t)
	r := NewCashFlowReport(l, 2025, time.August, reportNow)

	if !r.Yearly.TotalIncome.Equal(dec(6000)) {
		t.Errorf("yearly income: %s", r.Yearly.TotalIncome)
	}
	if r.Daily.Month != time.August || len(r.Daily.Expense) != 31 {
		t.Errorf("daily view: %+v", r.Daily)
	}
	if !r.Daily.Expense[4].Equal(dec(300)) {
		t.Errorf("august 5th: %s", r.Daily.Expense[4])
	}
	if len(r.Years) != 1 || r.Years[0] != 2025 {
		t.Errorf("years: %v", r.Years)
	}
}

func TestNewBudgetReport(t *testing.T) {
	l := reportLedger(t)
	l.SetCategoryBudget("Food", dec(400))
	l.SetCategoryBudget("Transport", dec(100))

	r := NewBudgetReport(l, reportNow)

	if !r.MonthSpent.Equal(dec(450)) {
		t.Errorf("month spent: %s", r.MonthSpent)
	}
	if !r.Survival.Equal(55) || r.Critical {
		t.Errorf("survival: %s", r.Survival)
	}
	if !r.Overview.TotalLimit.Equal(dec(500)) || !r.Overview.TotalSpent.Equal(dec(450)) {
		t.Errorf("overview: %+v", r.Overview)
	}

	if len(r.Lines) != len(ExpenseCategories) {
		t.Fatalf("lines: got %d", len(r.Lines))
	}
	byCat := make(map[string]BudgetStanding)
	for _, line := range r.Lines {
		byCat[line.Category] = line.Standing
	}
	// Food spent 300 of 400: near limit. Transport spent 150 of 100: over.
	if byCat["Food"].Status != BudgetNearLimit {
		t.Errorf("food: %+v", byCat["Food"])
	}
	if byCat["Transport"].Status != BudgetOverLimit || !byCat["Transport"].Overage.Equal(dec(50)) {
		t.Errorf("transport: %+v", byCat["Transport"])
	}
	if byCat["Shopping"].Status != BudgetUntracked {
		t.Errorf("shopping: %+v", byCat["Shopping"])
	}
}

func TestNewGoalsReport(t *testing.T) {
	l := reportLedger(t)
	l.AddGoal(Goal{Name: "Vacation", Target: dec(5100), Current: dec(0)})

	r := NewGoalsReport(l, reportNow)

	if !r.Potential.Equal(dec(2550)) {
		t.Errorf("potential: %s", r.Potential)
	}
	if len(r.Lines) != 1 {
		t.Fatalf("lines: got %d", len(r.Lines))
	}
	if r.Lines[0].Progress.MonthsToGoal != 2 {
		t.Errorf("projection: %+v", r.Lines[0].Progress)
	}
}

func TestNewInvestmentsReport(t *testing.T) {
	l := newTestLedger()
	l.AddInvestment(Investment{Name: "VWCE", Type: "ETF", Amount: dec(1000), CurrentValue: dec(1200), Date: day("2025-03-01")})
	l.AddInvestment(Investment{Name: "BTC", Type: "Crypto", Amount: dec(500), CurrentValue: dec(400), Date: day("2025-05-01")})

	r := NewInvestmentsReport(l, reportNow)

	if !r.Summary.TotalValue.Equal(dec(1600)) {
		t.Errorf("total value: %s", r.Summary.TotalValue)
	}
	if len(r.Holdings) != 2 || r.Holdings[0].Name != "VWCE" {
		t.Errorf("holdings: %+v", r.Holdings)
	}
}

func TestNewTransactionsReport(t *testing.T) {
	l := reportLedger(t)
	f := Filter{Types: []TxType{Expense}}
	r := NewTransactionsReport(l, f, SortSpec{Key: SortByDate, Order: Descending}, reportNow)

	if len(r.Transactions) != 3 {
		t.Fatalf("selection: got %d", len(r.Transactions))
	}
	if r.Transactions[0].Date != day("2025-08-12") {
		t.Errorf("order: %+v", r.Transactions[0])
	}
	// The live total is the signed sum: all expenses here.
	if !r.NetTotal.Equal(dec(-1350)) {
		t.Errorf("net total: %s", r.NetTotal)
	}
}
