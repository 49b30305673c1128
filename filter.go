package tracker

import (
	"fmt"
	"slices"
	"strings"
)

// Filter selects transactions. Empty fields match everything: an empty type
// or category set is no constraint, a zero range bound is open on that side.
type Filter struct {
	Search     string // case-insensitive substring over description, category, amount and date
	Types      []TxType
	Categories []string
	Range      Range // inclusive calendar-date bounds
}

// Matches reports whether a transaction passes every clause of the filter.
func (f Filter) Matches(tx Transaction) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Description), term) &&
			!strings.Contains(strings.ToLower(tx.Category), term) &&
			!strings.Contains(tx.Amount.String(), term) &&
			!strings.Contains(tx.Date.String(), term) {
			return false
		}
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, tx.Type) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, tx.Category) {
		return false
	}
	return f.Range.Contains(tx.Date)
}

// SortKey names the transaction field a sort runs on.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByCategory    SortKey = "category"
	SortByDescription SortKey = "description"
)

// ParseSortKey parses a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDate:
		return SortByDate, nil
	case SortByAmount:
		return SortByAmount, nil
	case SortByCategory:
		return SortByCategory, nil
	case SortByDescription:
		return SortByDescription, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// SortOrder is ascending or descending.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder parses a sort order name.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// SortSpec pairs a key with an order.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// compare orders two transactions by the spec's key only; 0 means tied.
// Amounts compare by absolute value, strings case-insensitively.
func (s SortSpec) compare(a, b Transaction) int {
	var c int
	switch s.Key {
	case SortByAmount:
		c = a.Amount.Abs().Cmp(b.Amount.Abs())
	case SortByCategory:
		c = strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case SortByDescription:
		c = strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	default: // SortByDate
		c = a.Date.Compare(b.Date)
	}
	if s.Order == Descending {
		c = -c
	}
	return c
}

// Select filters and sorts a transaction collection. It returns a fresh
// slice and never mutates its input; the sort is stable, so ties keep their
// input relative order.
func Select(txns []Transaction, f Filter, s SortSpec) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, tx := range txns {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	slices.SortStableFunc(out, s.compare)
	return out
}
