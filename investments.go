package tracker

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Investment is a single holding: what was paid for it (cost basis) and what
// it is worth now. Edited by full replace, deleted by removal.
type Investment struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`   // category tag: Stocks, Crypto, ...
	Amount       decimal.Decimal `json:"amount"` // cost basis, positive
	CurrentValue decimal.Decimal `json:"currentValue"`
	Date         Date            `json:"date"`
	Notes        string          `json:"notes,omitempty"`
}

// Validate checks the holding fields for correctness.
func (v Investment) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("investment name is missing")
	}
	if v.Type == "" {
		return fmt.Errorf("investment type is missing")
	}
	if !v.Amount.IsPositive() {
		return fmt.Errorf("invested amount must be positive, got %s", v.Amount)
	}
	if v.CurrentValue.IsNegative() {
		return fmt.Errorf("current value cannot be negative, got %s", v.CurrentValue)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("investment date is missing")
	}
	return nil
}

// GainLoss returns the absolute gain (or loss, negative) of the holding.
func (v Investment) GainLoss() decimal.Decimal {
	return v.CurrentValue.Sub(v.Amount)
}

// GainLossPercent returns the gain relative to cost basis. A zero cost basis
// yields 0 rather than a division error.
func (v Investment) GainLossPercent() Percent {
	if v.Amount.IsZero() {
		return 0
	}
	return Percent(v.GainLoss().Div(v.Amount).InexactFloat64() * 100)
}

// PortfolioSummary aggregates all holdings.
type PortfolioSummary struct {
	TotalInvested decimal.Decimal
	TotalValue    decimal.Decimal
	TotalGainLoss decimal.Decimal
	TotalROI      Percent // 0 when nothing is invested
}

// SummarizePortfolio computes portfolio-level totals and return on investment.
func SummarizePortfolio(holdings []Investment) PortfolioSummary {
	var s PortfolioSummary
	for _, v := range holdings {
		s.TotalInvested = s.TotalInvested.Add(v.Amount)
		s.TotalValue = s.TotalValue.Add(v.CurrentValue)
	}
	s.TotalGainLoss = s.TotalValue.Sub(s.TotalInvested)
	if s.TotalInvested.IsPositive() {
		s.TotalROI = Percent(s.TotalGainLoss.Div(s.TotalInvested).InexactFloat64() * 100)
	}
	return s
}
