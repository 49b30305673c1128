package tracker

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal. Current only grows through deposits; there is no
// withdrawal operation.
type Goal struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Target  decimal.Decimal `json:"target"` // positive, enforced at creation
	Current decimal.Decimal `json:"current"`
	Color   string          `json:"color,omitempty"` // display tag
}

// Validate checks the goal fields for correctness.
func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name is missing")
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s", g.Target)
	}
	if g.Current.IsNegative() {
		return fmt.Errorf("goal current amount cannot be negative, got %s", g.Current)
	}
	return nil
}

// GoalStatus classifies a goal by its rounded completion percent. The bands
// do not overlap: every rounded percent maps to exactly one status.
type GoalStatus string

const (
	GoalEarly    GoalStatus = "early"    // rounded < 70
	GoalNear     GoalStatus = "near"     // 70 <= rounded < 100
	GoalComplete GoalStatus = "complete" // rounded == 100
	GoalOver     GoalStatus = "over"     // rounded > 100
)

// GoalProgress is the evaluated state of a single goal.
type GoalProgress struct {
	Percent        Percent // raw current/target*100, kept unrounded
	DisplayPercent int     // rounded value used for classification and display
	Status         GoalStatus
	Diff           decimal.Decimal // current - target; negative means remaining
	OveragePercent int             // only set for GoalOver

	// Time-to-goal projection, only computed while the goal is not reached.
	MonthsToGoal  int  // ceil(|remaining| / savings potential), when potential > 0
	NeedsCashFlow bool // set instead of MonthsToGoal when potential is zero
}

// Reached reports whether the goal target has been met or exceeded.
func (p GoalProgress) Reached() bool { return !p.Diff.IsNegative() }

// EvaluateGoal classifies a goal and projects the months to reach it at the
// given monthly savings potential (see SavingsPotential). The potential is
// global, not per goal.
func EvaluateGoal(g Goal, potential decimal.Decimal) GoalProgress {
	var p GoalProgress
	if g.Target.IsPositive() {
		p.Percent = Percent(g.Current.Div(g.Target).InexactFloat64() * 100)
	}
	p.DisplayPercent = p.Percent.Rounded()
	p.Diff = g.Current.Sub(g.Target)

	switch {
	case p.DisplayPercent < 70:
		p.Status = GoalEarly
	case p.DisplayPercent < 100:
		p.Status = GoalNear
	case p.DisplayPercent == 100:
		p.Status = GoalComplete
	default:
		p.Status = GoalOver
		p.OveragePercent = p.DisplayPercent - 100
	}

	if p.Diff.IsNegative() {
		if potential.IsPositive() {
			p.MonthsToGoal = int(p.Diff.Abs().Div(potential).Ceil().IntPart())
		} else {
			p.NeedsCashFlow = true
		}
	}
	return p
}

// GoalsSummary aggregates the goals page health counters.
type GoalsSummary struct {
	TotalSaved   decimal.Decimal
	TotalTarget  decimal.Decimal
	Completed    int // status complete
	Active       int // status early or near
	Overachieved int
}

// SummarizeGoals computes the goals page summary over all goals.
func SummarizeGoals(goals []Goal, potential decimal.Decimal) GoalsSummary {
	var s GoalsSummary
	for _, g := range goals {
		s.TotalSaved = s.TotalSaved.Add(g.Current)
		s.TotalTarget = s.TotalTarget.Add(g.Target)
		switch EvaluateGoal(g, potential).Status {
		case GoalComplete:
			s.Completed++
		case GoalOver:
			s.Overachieved++
		default:
			s.Active++
		}
	}
	return s
}
