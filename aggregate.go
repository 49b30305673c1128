package tracker

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Totals holds the three headline sums over a transaction collection.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // income - expense
}

// SumTotals computes income, expense and net balance over all transactions.
func SumTotals(txns []Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		switch tx.Type {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// MonthlyTotals computes the same sums restricted to one calendar month.
func MonthlyTotals(txns []Transaction, year int, month time.Month) Totals {
	var scoped []Transaction
	for _, tx := range txns {
		if tx.Date.SameMonth(year, month) {
			scoped = append(scoped, tx)
		}
	}
	return SumTotals(scoped)
}

// NetTotal sums the signed amounts of a collection, e.g. for the live total
// over a filtered selection.
func NetTotal(txns []Transaction) decimal.Decimal {
	var sum decimal.Decimal
	for _, tx := range txns {
		sum = sum.Add(tx.Signed())
	}
	return sum
}

// MonthOverMonthDelta returns the percent change from previous to current.
//
// The zero-previous handling is deliberately asymmetric and must be kept: a
// zero previous with positive current reads as +100%, while zero previous
// with non-positive current reads as 0%.
func MonthOverMonthDelta(current, previous decimal.Decimal) Percent {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	return Percent(current.Sub(previous).Div(previous.Abs()).InexactFloat64() * 100)
}

// CriticalSurvival is the survival percent below which the budget bar turns
// critical. Exactly 20 is still non-critical.
const CriticalSurvival Percent = 20

// SurvivalPercent returns the share of the monthly budget not yet spent,
// clamped to [0,100]. A non-positive budget yields 0.
func SurvivalPercent(budget, spent decimal.Decimal) Percent {
	if !budget.IsPositive() {
		return 0
	}
	left := budget.Sub(spent).Div(budget).InexactFloat64() * 100
	return Percent(math.Min(math.Max(left, 0), 100))
}

// IsCriticalSurvival reports whether a survival percent is in the critical band.
func IsCriticalSurvival(p Percent) bool { return p < CriticalSurvival }

// CategoryShare is one category's slice of the spending total.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  int // rounded integer share of the total
}

// Breakdown is the per-category expense breakdown for a timeframe.
type Breakdown struct {
	Categories []string          // same order as the input category list
	Amounts    []decimal.Decimal // parallel to Categories, not sorted by value
	Total      decimal.Decimal
	Shares     []CategoryShare // categories with zero spend are excluded
}

// CategoryBreakdown sums expense transactions per category over the given
// timeframe anchored at 'now'. The Amounts slice stays aligned to the input
// category order; Shares lists only categories with spending.
func CategoryBreakdown(txns []Transaction, categories []string, tf Timeframe, now Date) Breakdown {
	b := Breakdown{
		Categories: categories,
		Amounts:    make([]decimal.Decimal, len(categories)),
	}
	index := make(map[string]int, len(categories))
	for i, cat := range categories {
		index[cat] = i
	}

	for _, tx := range txns {
		if tx.Type != Expense || !tf.Contains(tx.Date, now) {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			continue
		}
		b.Amounts[i] = b.Amounts[i].Add(tx.Amount)
		b.Total = b.Total.Add(tx.Amount)
	}

	if b.Total.IsPositive() {
		for i, cat := range categories {
			if !b.Amounts[i].IsPositive() {
				continue
			}
			share := Percent(b.Amounts[i].Div(b.Total).InexactFloat64() * 100)
			b.Shares = append(b.Shares, CategoryShare{
				Category: cat,
				Amount:   b.Amounts[i],
				Percent:  share.Rounded(),
			})
		}
	}
	return b
}

// MonthStat names a month and the amount that singled it out.
type MonthStat struct {
	Month  time.Month
	Amount decimal.Decimal
	OK     bool // false when no month qualified
}

// YearlyReport is the cash-flow view over one calendar year, bucketed by
// month index 0-11.
type YearlyReport struct {
	Year    int
	Income  [12]decimal.Decimal
	Expense [12]decimal.Decimal
	Net     [12]decimal.Decimal

	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetFlow      decimal.Decimal
	SavingsRate  int // round(net/income*100), 0 when income is 0

	BestMonth  MonthStat       // highest positive income month, first wins ties
	WorstMonth MonthStat       // highest positive expense month, same tie rule
	AvgIncome  decimal.Decimal // annual sum / 12, regardless of data coverage
	AvgExpense decimal.Decimal
}

var twelve = decimal.NewFromInt(12)

// YearlySeries buckets one year of transactions into monthly income and
// expense series and derives the headline cash-flow metrics.
func YearlySeries(txns []Transaction, year int) YearlyReport {
	r := YearlyReport{Year: year}
	for _, tx := range txns {
		if tx.Date.Year() != year {
			continue
		}
		m := int(tx.Date.Month()) - 1
		switch tx.Type {
		case Income:
			r.Income[m] = r.Income[m].Add(tx.Amount)
			r.TotalIncome = r.TotalIncome.Add(tx.Amount)
		case Expense:
			r.Expense[m] = r.Expense[m].Add(tx.Amount)
			r.TotalExpense = r.TotalExpense.Add(tx.Amount)
		}
	}
	r.NetFlow = r.TotalIncome.Sub(r.TotalExpense)
	if r.TotalIncome.IsPositive() {
		r.SavingsRate = Percent(r.NetFlow.Div(r.TotalIncome).InexactFloat64() * 100).Rounded()
	}

	for i := 0; i < 12; i++ {
		r.Net[i] = r.Income[i].Sub(r.Expense[i])
		if r.Income[i].IsPositive() && (!r.BestMonth.OK || r.Income[i].GreaterThan(r.BestMonth.Amount)) {
			r.BestMonth = MonthStat{Month: time.Month(i + 1), Amount: r.Income[i], OK: true}
		}
		if r.Expense[i].IsPositive() && (!r.WorstMonth.OK || r.Expense[i].GreaterThan(r.WorstMonth.Amount)) {
			r.WorstMonth = MonthStat{Month: time.Month(i + 1), Amount: r.Expense[i], OK: true}
		}
	}
	r.AvgIncome = r.TotalIncome.Div(twelve)
	r.AvgExpense = r.TotalExpense.Div(twelve)
	return r
}

// DailyReport is the daily breakdown of one calendar month. Day d of the
// month is stored at index d-1.
type DailyReport struct {
	Year    int
	Month   time.Month
	Income  []decimal.Decimal // length = days in month
	Expense []decimal.Decimal
}

// DailySeries buckets one month of transactions by day of month.
func DailySeries(txns []Transaction, year int, month time.Month) DailyReport {
	days := DaysInMonth(year, month)
	r := DailyReport{
		Year:    year,
		Month:   month,
		Income:  make([]decimal.Decimal, days),
		Expense: make([]decimal.Decimal, days),
	}
	for _, tx := range txns {
		if !tx.Date.SameMonth(year, month) {
			continue
		}
		d := tx.Date.Day() - 1
		switch tx.Type {
		case Income:
			r.Income[d] = r.Income[d].Add(tx.Amount)
		case Expense:
			r.Expense[d] = r.Expense[d].Add(tx.Amount)
		}
	}
	return r
}

// SavingsPotential is the monthly saving capability: current-month income
// minus current-month expense, floored at zero. It feeds the goal
// time-to-goal projection and is computed globally, not per goal.
func SavingsPotential(txns []Transaction, now Date) decimal.Decimal {
	t := MonthlyTotals(txns, now.Year(), now.Month())
	if t.Balance.IsNegative() {
		return decimal.Zero
	}
	return t.Balance
}

// TransactionYears lists the distinct years present in the collection, most
// recent first. An empty collection yields the reference year alone.
func TransactionYears(txns []Transaction, now Date) []int {
	seen := make(map[int]bool)
	var years []int
	for _, tx := range txns {
		if y := tx.Date.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []int{now.Year()}
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}
