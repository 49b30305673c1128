package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// TxType discriminates income from expense transactions.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a transaction type.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Fixed category sets, keyed by transaction type. A transaction's category
// must belong to the set for its type.
var (
	ExpenseCategories = []string{"Shopping", "Food", "Transport", "Fun", "Utilities", "Entertainment", "Health", "Other"}
	IncomeCategories  = []string{"Salary", "Freelance", "Investments", "Pocket-Money", "Gift", "Other"}
)

// CategoriesFor returns the category set for a transaction type.
func CategoriesFor(t TxType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// Transaction is a single income or expense record. It is immutable once in
// the ledger; edits replace the whole record under the same ID.
type Transaction struct {
	ID          int64           `json:"id"` // unique, creation-time-derived
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // always positive; the type carries the sign
	Date        Date            `json:"date"`
	Time        string          `json:"time,omitempty"` // optional clock time "15:04"
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// Validate checks the transaction fields for correctness. It does not touch
// the ledger; ID uniqueness is the ledger's concern.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is missing")
	}
	if !slices.Contains(CategoriesFor(t.Type), t.Category) {
		return fmt.Errorf("category %q is not a valid %s category", t.Category, t.Type)
	}
	return nil
}

// Signed returns the amount with the sign implied by the type: positive for
// income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Date == o.Date &&
		t.Time == o.Time &&
		t.Category == o.Category &&
		t.Description == o.Description
}
