package tracker

import (
	"time"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create decimals from consts.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// day is a helper for tests to create dates from ISO strings.
func day(s string) Date { return MustParseDate(s) }

// testClock returns a fixed clock advancing by step on every call.
func testClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

// newTestLedger creates a ledger with a deterministic clock.
func newTestLedger() *Ledger {
	l := NewLedger()
	l.SetClock(testClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC), time.Second))
	return l
}

// expense is a helper for tests to build a valid expense transaction.
func expense(amount float64, date, category string) Transaction {
	return Transaction{Type: Expense, Amount: dec(amount), Date: day(date), Category: category}
}

// income is a helper for tests to build a valid income transaction.
func income(amount float64, date, category string) Transaction {
	return Transaction{Type: Income, Amount: dec(amount), Date: day(date), Category: category}
}
