package tracker

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the single mutable container of the tracker: transactions,
// goals, category budgets, investments and settings. It is the only writer;
// every engine function reads from it and returns plain data.
//
// Records keep their insertion order. Edits replace a record in place under
// the same ID; the query engine is responsible for any ordering the views
// want.
type Ledger struct {
	transactions []Transaction
	goals        []Goal
	budgets      map[string]decimal.Decimal // expense category -> limit; absent means no limit
	investments  []Investment
	settings     Settings

	clock func() time.Time // injectable for deterministic IDs in tests
}

// NewLedger creates an empty ledger with default settings.
func NewLedger() *Ledger {
	return &Ledger{
		budgets:  make(map[string]decimal.Decimal),
		settings: DefaultSettings(),
		clock:    time.Now,
	}
}

// SetClock replaces the ID clock, for tests.
func (l *Ledger) SetClock(clock func() time.Time) { l.clock = clock }

// nextID derives a creation-time ID (Unix milliseconds) and bumps it until
// it is unique within the given set.
func (l *Ledger) nextID(taken func(int64) bool) int64 {
	id := l.clock().UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

// --- reads ---

// Transactions returns a copy of the transaction collection in insertion
// order. Mutating the copy never touches the ledger.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Goals returns a copy of the goals in insertion order.
func (l *Ledger) Goals() []Goal { return slices.Clone(l.goals) }

// Investments returns a copy of the holdings in insertion order.
func (l *Ledger) Investments() []Investment { return slices.Clone(l.investments) }

// CategoryBudgets returns a copy of the category limit map.
func (l *Ledger) CategoryBudgets() map[string]decimal.Decimal {
	return maps.Clone(l.budgets)
}

// CategoryBudget returns the limit for a category, zero when unset.
func (l *Ledger) CategoryBudget(category string) decimal.Decimal {
	return l.budgets[category]
}

// Settings returns the current account settings.
func (l *Ledger) Settings() Settings { return l.settings }

// MonthlyBudget returns the global monthly budget.
func (l *Ledger) MonthlyBudget() decimal.Decimal { return l.settings.MonthlyBudget }

// Money wraps a raw decimal in the ledger's display currency.
func (l *Ledger) Money(v decimal.Decimal) Money { return M(v, l.settings.Currency) }

// CategorySpent sums this category's expenses for one calendar month.
func (l *Ledger) CategorySpent(category string, year int, month time.Month) decimal.Decimal {
	var sum decimal.Decimal
	for _, tx := range l.transactions {
		if tx.Type == Expense && tx.Category == category && tx.Date.SameMonth(year, month) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// --- transaction mutations ---

func (l *Ledger) txTaken(id int64) bool {
	return slices.ContainsFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
}

// AddTransaction validates and appends a new transaction, assigning its ID.
// On error the ledger is unchanged.
func (l *Ledger) AddTransaction(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	tx.ID = l.nextID(l.txTaken)
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// UpdateTransaction replaces the transaction with the same ID, in place.
func (l *Ledger) UpdateTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == tx.ID })
	if i < 0 {
		return fmt.Errorf("transaction %d not found", tx.ID)
	}
	l.transactions[i] = tx
	return nil
}

// DeleteTransaction returns a confirmation-required command removing the
// transaction.
func (l *Ledger) DeleteTransaction(id int64) (*Command, error) {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("transaction %d not found", id)
	}
	tx := l.transactions[i]
	desc := fmt.Sprintf("delete %s of %s on %s (%s)", tx.Type, l.Money(tx.Amount), tx.Date, tx.Category)
	return newCommand(desc, func() error {
		j := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
		if j < 0 {
			return fmt.Errorf("transaction %d not found", id)
		}
		l.transactions = slices.Delete(l.transactions, j, j+1)
		return nil
	}), nil
}

// --- goal mutations ---

func (l *Ledger) goalTaken(id int64) bool {
	return slices.ContainsFunc(l.goals, func(g Goal) bool { return g.ID == id })
}

// AddGoal validates and appends a new savings goal, assigning its ID.
func (l *Ledger) AddGoal(g Goal) (Goal, error) {
	if err := g.Validate(); err != nil {
		return Goal{}, fmt.Errorf("invalid goal: %w", err)
	}
	g.ID = l.nextID(l.goalTaken)
	l.goals = append(l.goals, g)
	return g, nil
}

// DepositToGoal increases a goal's saved amount. Deposits only grow the goal;
// there is no withdrawal.
func (l *Ledger) DepositToGoal(id int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s", amount)
	}
	i := slices.IndexFunc(l.goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return fmt.Errorf("goal %d not found", id)
	}
	l.goals[i].Current = l.goals[i].Current.Add(amount)
	return nil
}

// DeleteGoal returns a confirmation-required command removing the goal.
func (l *Ledger) DeleteGoal(id int64) (*Command, error) {
	i := slices.IndexFunc(l.goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("goal %d not found", id)
	}
	name := l.goals[i].Name
	return newCommand(fmt.Sprintf("delete goal %q", name), func() error {
		j := slices.IndexFunc(l.goals, func(g Goal) bool { return g.ID == id })
		if j < 0 {
			return fmt.Errorf("goal %d not found", id)
		}
		l.goals = slices.Delete(l.goals, j, j+1)
		return nil
	}), nil
}

// --- budget mutations ---

// SetCategoryBudget sets a monthly limit on an expense category. A zero
// limit clears the entry ("no limit set"); limits are never auto-created.
func (l *Ledger) SetCategoryBudget(category string, limit decimal.Decimal) error {
	if !slices.Contains(ExpenseCategories, category) {
		return fmt.Errorf("category %q is not a valid expense category", category)
	}
	if limit.IsNegative() {
		return fmt.Errorf("budget limit cannot be negative, got %s", limit)
	}
	if limit.IsZero() {
		delete(l.budgets, category)
		return nil
	}
	l.budgets[category] = limit
	return nil
}

// ResetCategoryBudgets returns a confirmation-required command clearing all
// category limits.
func (l *Ledger) ResetCategoryBudgets() *Command {
	return newCommand("clear all category budget limits", func() error {
		l.budgets = make(map[string]decimal.Decimal)
		return nil
	})
}

// --- investment mutations ---

func (l *Ledger) investmentTaken(id int64) bool {
	return slices.ContainsFunc(l.investments, func(v Investment) bool { return v.ID == id })
}

// AddInvestment validates and appends a new holding, assigning its ID.
func (l *Ledger) AddInvestment(v Investment) (Investment, error) {
	if err := v.Validate(); err != nil {
		return Investment{}, fmt.Errorf("invalid investment: %w", err)
	}
	v.ID = l.nextID(l.investmentTaken)
	l.investments = append(l.investments, v)
	return v, nil
}

// UpdateInvestment replaces the holding with the same ID, in place.
func (l *Ledger) UpdateInvestment(v Investment) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid investment: %w", err)
	}
	i := slices.IndexFunc(l.investments, func(h Investment) bool { return h.ID == v.ID })
	if i < 0 {
		return fmt.Errorf("investment %d not found", v.ID)
	}
	l.investments[i] = v
	return nil
}

// DeleteInvestment returns a confirmation-required command removing the holding.
func (l *Ledger) DeleteInvestment(id int64) (*Command, error) {
	i := slices.IndexFunc(l.investments, func(v Investment) bool { return v.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("investment %d not found", id)
	}
	name := l.investments[i].Name
	return newCommand(fmt.Sprintf("delete investment %q", name), func() error {
		j := slices.IndexFunc(l.investments, func(v Investment) bool { return v.ID == id })
		if j < 0 {
			return fmt.Errorf("investment %d not found", id)
		}
		l.investments = slices.Delete(l.investments, j, j+1)
		return nil
	}), nil
}

// --- settings mutations ---

// SetMonthlyBudget sets the global monthly budget.
func (l *Ledger) SetMonthlyBudget(v decimal.Decimal) error {
	s := l.settings
	s.MonthlyBudget = v
	if err := s.validate(); err != nil {
		return err
	}
	l.settings = s
	return nil
}

// SetCurrency sets the display currency symbol or code.
func (l *Ledger) SetCurrency(currency string) error {
	s := l.settings
	s.Currency = currency
	if err := s.validate(); err != nil {
		return err
	}
	l.settings = s
	return nil
}

// UpdateProfile sets the display name and email. Empty values keep the
// current ones, like the original settings form.
func (l *Ledger) UpdateProfile(name, email string) {
	if name != "" {
		l.settings.Name = name
	}
	if email != "" {
		l.settings.Email = email
	}
}

// SetProfileImage stores the profile image data URI, rejecting oversized
// images with ErrImageTooLarge.
func (l *Ledger) SetProfileImage(dataURI string) error {
	s := l.settings
	s.ProfileImage = dataURI
	if err := s.validate(); err != nil {
		return err
	}
	l.settings = s
	return nil
}

// Wipe returns a confirmation-required command deleting every record and
// restoring default settings.
func (l *Ledger) Wipe() *Command {
	return newCommand("delete ALL data and restore defaults", func() error {
		clock := l.clock
		*l = *NewLedger()
		l.clock = clock
		return nil
	})
}
