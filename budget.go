package tracker

import (
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies a category's monthly spending against its limit.
type BudgetStatus string

const (
	// BudgetUntracked means no limit is set and nothing was spent.
	BudgetUntracked BudgetStatus = "untracked"
	// BudgetOverNoLimit means money was spent with no limit set; the views
	// treat it as a breach.
	BudgetOverNoLimit BudgetStatus = "overNoLimit"
	// BudgetOnTrack means spending is at or below 80% of the limit.
	BudgetOnTrack BudgetStatus = "onTrack"
	// BudgetNearLimit means spending is above 80% but within the limit.
	BudgetNearLimit BudgetStatus = "nearLimit"
	// BudgetOverLimit means spending exceeds the limit.
	BudgetOverLimit BudgetStatus = "overLimit"
)

// nearLimitRatio is the on-track/near-limit boundary: spent/limit <= 0.80 is
// still on track.
var nearLimitRatio = decimal.NewFromFloat(0.80)

// BudgetStanding is the evaluated state of one category budget for the
// current month.
type BudgetStanding struct {
	Status       BudgetStatus
	Limit        decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal // limit - spent; negative when over
	Overage      decimal.Decimal // spent - limit, only set for overLimit
	PercentSpent Percent
	PercentLeft  Percent // floored at 0
	BarWidth     Percent // percent spent capped at 100, for progress bars
}

// EvaluateBudget classifies one category's month-to-date spending against its
// limit. A zero limit means "no limit set".
func EvaluateBudget(limit, spent decimal.Decimal) BudgetStanding {
	s := BudgetStanding{Limit: limit, Spent: spent}

	if !limit.IsPositive() {
		if spent.IsPositive() {
			// Spending against an untracked category is shown as a full bar.
			s.Status = BudgetOverNoLimit
			s.PercentSpent = 100
			s.BarWidth = 100
		} else {
			s.Status = BudgetUntracked
			s.PercentLeft = 100
		}
		return s
	}

	s.Remaining = limit.Sub(spent)
	s.PercentSpent = Percent(spent.Div(limit).InexactFloat64() * 100)
	s.PercentLeft = Percent(max(0, 100-float64(s.PercentSpent)))
	s.BarWidth = Percent(min(float64(s.PercentSpent), 100))

	switch {
	case spent.GreaterThan(limit):
		s.Status = BudgetOverLimit
		s.Overage = spent.Sub(limit)
		s.PercentLeft = 0
	case spent.Div(limit).LessThanOrEqual(nearLimitRatio):
		s.Status = BudgetOnTrack
	default:
		s.Status = BudgetNearLimit
	}
	return s
}

// BudgetOverview is the aggregate "budget circle": totals summed only over
// categories that have a limit set.
type BudgetOverview struct {
	TotalLimit  decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed Percent // min(spent/limit*100, 100)
	PercentLeft Percent // 100 - used, floored at 0
}

// OverviewBudgets sums limits and month-to-date spending over the tracked
// categories. The spent function maps a category to its spend; categories
// without a positive limit are excluded entirely.
func OverviewBudgets(limits map[string]decimal.Decimal, categories []string, spent func(category string) decimal.Decimal) BudgetOverview {
	var o BudgetOverview
	for _, cat := range categories {
		limit := limits[cat]
		if !limit.IsPositive() {
			continue
		}
		o.TotalLimit = o.TotalLimit.Add(limit)
		o.TotalSpent = o.TotalSpent.Add(spent(cat))
	}
	o.Remaining = o.TotalLimit.Sub(o.TotalSpent)
	if o.TotalLimit.IsPositive() {
		o.PercentUsed = Percent(min(o.TotalSpent.Div(o.TotalLimit).InexactFloat64()*100, 100))
	}
	o.PercentLeft = Percent(max(0, 100-float64(o.PercentUsed)))
	return o
}
