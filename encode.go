package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Store keys. Each collection persists under its own key so a failed write
// can never corrupt the others.
const (
	keyTransactions = "transactions"
	keyBudget       = "budget" // monthly budget, plain decimal text
	keyCatBudgets   = "category_budgets"
	keyGoals        = "goals"
	keyInvestments  = "investments"
	keySettings     = "settings"
)

// storeKeys lists every key the ledger owns in a store.
var storeKeys = []string{
	keyTransactions, keyBudget, keyCatBudgets,
	keyGoals, keyInvestments, keySettings,
}

// Save serializes the whole ledger into the store, one key per collection.
// Empty collections are deleted rather than stored as "[]".
func (l *Ledger) Save(s Store) error {
	if err := saveJSON(s, keyTransactions, l.transactions, len(l.transactions) == 0); err != nil {
		return err
	}
	if err := saveJSON(s, keyGoals, l.goals, len(l.goals) == 0); err != nil {
		return err
	}
	if err := saveJSON(s, keyInvestments, l.investments, len(l.investments) == 0); err != nil {
		return err
	}

	catBudgets := make(map[string]string, len(l.budgets))
	for cat, limit := range l.budgets {
		catBudgets[cat] = limit.String()
	}
	if err := saveJSON(s, keyCatBudgets, catBudgets, len(catBudgets) == 0); err != nil {
		return err
	}

	// The monthly budget keeps its own key as a bare number, so it stays
	// editable by hand.
	if err := s.Set(keyBudget, []byte(l.settings.MonthlyBudget.String())); err != nil {
		return fmt.Errorf("persist error: cannot write key %q: %w", keyBudget, err)
	}

	data, err := json.Marshal(l.settings)
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal settings: %w", err)
	}
	if err := s.Set(keySettings, data); err != nil {
		return fmt.Errorf("persist error: cannot write key %q: %w", keySettings, err)
	}
	return nil
}

// saveJSON stores a collection as JSON, or deletes its key when empty.
func saveJSON(s Store, key string, collection any, empty bool) error {
	if empty {
		if err := s.Delete(key); err != nil {
			return fmt.Errorf("persist error: cannot delete key %q: %w", key, err)
		}
		return nil
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal key %q: %w", key, err)
	}
	if err := s.Set(key, data); err != nil {
		return fmt.Errorf("persist error: cannot write key %q: %w", key, err)
	}
	return nil
}

// LoadLedger reads a full ledger back from the store. Absent keys load as
// empty collections and default settings, so a fresh store just works.
func LoadLedger(s Store) (*Ledger, error) {
	l := NewLedger()

	if err := loadJSON(s, keyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if err := loadJSON(s, keyGoals, &l.goals); err != nil {
		return nil, err
	}
	if err := loadJSON(s, keyInvestments, &l.investments); err != nil {
		return nil, err
	}

	var catBudgets map[string]string
	if err := loadJSON(s, keyCatBudgets, &catBudgets); err != nil {
		return nil, err
	}
	for cat, limit := range catBudgets {
		v, err := decimal.NewFromString(limit)
		if err != nil {
			return nil, fmt.Errorf("load error: key %q: bad limit for %q: %w", keyCatBudgets, cat, err)
		}
		if v.IsPositive() {
			l.budgets[cat] = v
		}
	}

	if err := loadJSON(s, keySettings, &l.settings); err != nil {
		return nil, err
	}
	if l.settings.Currency == "" {
		l.settings.Currency = DefaultSettings().Currency
	}

	// The standalone budget key wins over the one inside settings.
	if data, err := s.Get(keyBudget); err == nil {
		v, err := decimal.NewFromString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("load error: key %q is not a number: %w", keyBudget, err)
		}
		l.settings.MonthlyBudget = v
	} else if !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load error: cannot read key %q: %w", keyBudget, err)
	}
	if l.settings.MonthlyBudget.IsZero() {
		l.settings.MonthlyBudget = DefaultSettings().MonthlyBudget
	}

	return l, nil
}

// loadJSON reads one key into dst, leaving dst untouched when the key is
// absent.
func loadJSON(s Store, key string, dst any) error {
	data, err := s.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot read key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("load error: key %q: %w", key, err)
	}
	return nil
}

// NewReplaceCommand returns a confirmation-required command clearing the
// store and saving the given ledger into it, e.g. after a legacy import.
func NewReplaceCommand(l *Ledger, s Store) *Command {
	return newCommand("replace ALL stored data with the imported ledger", func() error {
		if err := Clear(s); err != nil {
			return err
		}
		return l.Save(s)
	})
}

// Clear removes every ledger key from the store.
func Clear(s Store) error {
	for _, key := range storeKeys {
		if err := s.Delete(key); err != nil {
			return fmt.Errorf("persist error: cannot delete key %q: %w", key, err)
		}
	}
	return nil
}
