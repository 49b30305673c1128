package tracker

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardReport is the at-a-glance state of the whole tracker for one
// timeframe: headline totals, month-over-month movement, budget survival,
// a category breakdown and the latest activity.
type DashboardReport struct {
	Timestamp time.Time
	Timeframe Timeframe
	Currency  string

	Totals       Totals  // over the selected timeframe
	AllTime      Totals  // regardless of timeframe
	BalanceDelta Percent // month-over-month net flow movement
	IncomeDelta  Percent
	ExpenseDelta Percent
	SavingsRate  int // current year, round(net/income*100)

	MonthlyBudget decimal.Decimal
	Survival      Percent // share of the monthly budget still unspent
	Critical      bool    // survival below the critical band

	Potential decimal.Decimal // current-month saving capability
	Goals     GoalsSummary
	Breakdown Breakdown // expense categories over the timeframe
	Recent    []Transaction
}

// recentCount is how many transactions the dashboard lists.
const recentCount = 5

// NewDashboardReport assembles the dashboard for the given timeframe,
// anchored at now.
func NewDashboardReport(l *Ledger, tf Timeframe, now time.Time) *DashboardReport {
	txns := l.Transactions()
	today := NewDate(now.Year(), now.Month(), now.Day())
	prev := today.AddMonths(-1)

	cur := MonthlyTotals(txns, today.Year(), today.Month())
	before := MonthlyTotals(txns, prev.Year(), prev.Month())

	var scoped []Transaction
	for _, tx := range txns {
		if tf.Contains(tx.Date, today) {
			scoped = append(scoped, tx)
		}
	}

	r := &DashboardReport{
		Timestamp: now,
		Timeframe: tf,
		Currency:  l.Settings().Currency,

		Totals:       SumTotals(scoped),
		AllTime:      SumTotals(txns),
		BalanceDelta: MonthOverMonthDelta(cur.Balance, before.Balance),
		IncomeDelta:  MonthOverMonthDelta(cur.Income, before.Income),
		ExpenseDelta: MonthOverMonthDelta(cur.Expense, before.Expense),
		SavingsRate:  YearlySeries(txns, today.Year()).SavingsRate,

		MonthlyBudget: l.MonthlyBudget(),
		Potential:     SavingsPotential(txns, today),
		Breakdown:     CategoryBreakdown(txns, ExpenseCategories, tf, today),
	}
	r.Survival = SurvivalPercent(r.MonthlyBudget, cur.Expense)
	r.Critical = IsCriticalSurvival(r.Survival)
	r.Goals = SummarizeGoals(l.Goals(), r.Potential)

	// Latest activity, newest first. The stable sort keeps same-day entries
	// in insertion order, so reversing lists the most recent addition first.
	sorted := Select(txns, Filter{}, SortSpec{Key: SortByDate, Order: Ascending})
	slices.Reverse(sorted)
	if len(sorted) > recentCount {
		sorted = sorted[:recentCount]
	}
	r.Recent = sorted

	return r
}

// CashFlowReport is the cash-flow page: a full-year monthly view plus the
// daily detail of one month, and the year choices for navigation.
type CashFlowReport struct {
	Timestamp time.Time
	Currency  string

	Yearly YearlyReport
	Daily  DailyReport
	Years  []int // distinct transaction years, most recent first
}

// NewCashFlowReport assembles the cash-flow page for one year, with the
// daily view on the given month.
func NewCashFlowReport(l *Ledger, year int, month time.Month, now time.Time) *CashFlowReport {
	txns := l.Transactions()
	today := NewDate(now.Year(), now.Month(), now.Day())
	return &CashFlowReport{
		Timestamp: now,
		Currency:  l.Settings().Currency,
		Yearly:    YearlySeries(txns, year),
		Daily:     DailySeries(txns, year, month),
		Years:     TransactionYears(txns, today),
	}
}

// CategoryBudgetLine is one row of the budget page.
type CategoryBudgetLine struct {
	Category string
	Standing BudgetStanding
}

// BudgetReport is the budget page: the global monthly budget bar, the
// tracked-category overview circle and one line per expense category.
type BudgetReport struct {
	Timestamp time.Time
	Currency  string

	MonthlyBudget decimal.Decimal
	MonthSpent    decimal.Decimal
	Survival      Percent
	Critical      bool

	Overview BudgetOverview
	Lines    []CategoryBudgetLine // one per expense category, fixed order
}

// NewBudgetReport assembles the budget page for the current month.
func NewBudgetReport(l *Ledger, now time.Time) *BudgetReport {
	today := NewDate(now.Year(), now.Month(), now.Day())
	spent := func(cat string) decimal.Decimal {
		return l.CategorySpent(cat, today.Year(), today.Month())
	}
	limits := l.CategoryBudgets()

	r := &BudgetReport{
		Timestamp:     now,
		Currency:      l.Settings().Currency,
		MonthlyBudget: l.MonthlyBudget(),
		MonthSpent:    MonthlyTotals(l.Transactions(), today.Year(), today.Month()).Expense,
		Overview:      OverviewBudgets(limits, ExpenseCategories, spent),
	}
	r.Survival = SurvivalPercent(r.MonthlyBudget, r.MonthSpent)
	r.Critical = IsCriticalSurvival(r.Survival)

	for _, cat := range ExpenseCategories {
		r.Lines = append(r.Lines, CategoryBudgetLine{
			Category: cat,
			Standing: EvaluateBudget(limits[cat], spent(cat)),
		})
	}
	return r
}

// GoalLine is one goal with its evaluated progress.
type GoalLine struct {
	Goal     Goal
	Progress GoalProgress
}

// GoalsReport is the goals page: health counters plus one line per goal.
type GoalsReport struct {
	Timestamp time.Time
	Currency  string

	Potential decimal.Decimal // feeds every time-to-goal projection
	Summary   GoalsSummary
	Lines     []GoalLine
}

// NewGoalsReport assembles the goals page.
func NewGoalsReport(l *Ledger, now time.Time) *GoalsReport {
	today := NewDate(now.Year(), now.Month(), now.Day())
	goals := l.Goals()
	potential := SavingsPotential(l.Transactions(), today)

	r := &GoalsReport{
		Timestamp: now,
		Currency:  l.Settings().Currency,
		Potential: potential,
		Summary:   SummarizeGoals(goals, potential),
	}
	for _, g := range goals {
		r.Lines = append(r.Lines, GoalLine{Goal: g, Progress: EvaluateGoal(g, potential)})
	}
	return r
}

// InvestmentsReport is the portfolio page: aggregate totals plus the
// holdings in insertion order.
type InvestmentsReport struct {
	Timestamp time.Time
	Currency  string

	Summary  PortfolioSummary
	Holdings []Investment
}

// NewInvestmentsReport assembles the portfolio page.
func NewInvestmentsReport(l *Ledger, now time.Time) *InvestmentsReport {
	holdings := l.Investments()
	return &InvestmentsReport{
		Timestamp: now,
		Currency:  l.Settings().Currency,
		Summary:   SummarizePortfolio(holdings),
		Holdings:  holdings,
	}
}

// TransactionsReport is a filtered, sorted listing with its live net total.
type TransactionsReport struct {
	Timestamp time.Time
	Currency  string

	Transactions []Transaction
	NetTotal     decimal.Decimal // signed sum over the selection
}

// NewTransactionsReport runs a query against the ledger and totals the
// selection.
func NewTransactionsReport(l *Ledger, f Filter, s SortSpec, now time.Time) *TransactionsReport {
	selected := Select(l.Transactions(), f, s)
	return &TransactionsReport{
		Timestamp:    now,
		Currency:     l.Settings().Currency,
		Transactions: selected,
		NetTotal:     NetTotal(selected),
	}
}
