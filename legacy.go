package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file imports data from the legacy browser build of the tracker. Its
// export is a JSON object mapping localStorage keys to string values. The
// old build kept the transaction array under "pocketguard_db", category
// limits under "pocketguard_cat_budgets", the monthly budget as a bare
// number, and the profile as separate scalar keys; investments were never
// persisted.

// legacyPrefix prefixes every entry of the old build.
const legacyPrefix = "pocketguard_"

// legacyString extracts one localStorage value from the dump, empty when the
// key is absent.
func legacyString(dump any, key string) (string, error) {
	v, err := jsonpath.Get(fmt.Sprintf("$[%q]", legacyPrefix+key), dump)
	if err != nil {
		// jsonpath reports missing keys as an unknown-key error.
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("import error: key %q is not a string", legacyPrefix+key)
	}
	return s, nil
}

// ImportLegacy reads a localStorage dump and rebuilds a ledger from it.
// Records that fail validation are skipped and reported, never imported
// half-broken.
func ImportLegacy(r io.Reader) (*Ledger, []error, error) {
	var dump any
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, nil, fmt.Errorf("import error: not a valid dump: %w", err)
	}

	l := NewLedger()
	var skipped []error

	// Transactions. The old build stored the raw array under "db", with
	// float amounts and millisecond IDs; both carry over.
	if raw, err := legacyString(dump, "db"); err != nil {
		return nil, nil, err
	} else if raw != "" {
		var items []struct {
			ID          int64   `json:"id"`
			Type        string  `json:"type"`
			Amount      float64 `json:"amount"`
			Date        string  `json:"date"`
			Time        string  `json:"time"`
			Category    string  `json:"category"`
			Description string  `json:"description"`
		}
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, nil, fmt.Errorf("import error: transactions: %w", err)
		}
		for _, it := range items {
			typ, err := ParseTxType(it.Type)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("transaction %d: %w", it.ID, err))
				continue
			}
			date, err := ParseDate(it.Date)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("transaction %d: %w", it.ID, err))
				continue
			}
			tx := Transaction{
				ID:          it.ID,
				Type:        typ,
				Amount:      decimal.NewFromFloat(it.Amount),
				Date:        date,
				Time:        it.Time,
				Category:    it.Category,
				Description: it.Description,
			}
			if err := tx.Validate(); err != nil {
				skipped = append(skipped, fmt.Errorf("transaction %d: %w", it.ID, err))
				continue
			}
			l.transactions = append(l.transactions, tx)
		}
	}

	// Goals. The saved amount is "current"; the old build's notification
	// code read a "saved" field in places, so that spelling is accepted as
	// a fallback.
	if raw, err := legacyString(dump, "goals"); err != nil {
		return nil, nil, err
	} else if raw != "" {
		var items []struct {
			ID      int64    `json:"id"`
			Name    string   `json:"name"`
			Target  float64  `json:"target"`
			Current *float64 `json:"current"`
			Saved   float64  `json:"saved"`
			Color   string   `json:"color"`
		}
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, nil, fmt.Errorf("import error: goals: %w", err)
		}
		for _, it := range items {
			current := it.Saved
			if it.Current != nil {
				current = *it.Current
			}
			g := Goal{
				ID:      it.ID,
				Name:    it.Name,
				Target:  decimal.NewFromFloat(it.Target),
				Current: decimal.NewFromFloat(current),
				Color:   it.Color,
			}
			if err := g.Validate(); err != nil {
				skipped = append(skipped, fmt.Errorf("goal %d: %w", it.ID, err))
				continue
			}
			l.goals = append(l.goals, g)
		}
	}

	// Category budgets.
	if raw, err := legacyString(dump, "cat_budgets"); err != nil {
		return nil, nil, err
	} else if raw != "" {
		var limits map[string]float64
		if err := json.Unmarshal([]byte(raw), &limits); err != nil {
			return nil, nil, fmt.Errorf("import error: category budgets: %w", err)
		}
		for cat, limit := range limits {
			if err := l.SetCategoryBudget(cat, decimal.NewFromFloat(limit)); err != nil {
				skipped = append(skipped, fmt.Errorf("budget %q: %w", cat, err))
			}
		}
	}

	// Monthly budget, stored as bare number text.
	if raw, err := legacyString(dump, "budget"); err != nil {
		return nil, nil, err
	} else if raw != "" {
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			skipped = append(skipped, fmt.Errorf("monthly budget: %w", err))
		} else if err := l.SetMonthlyBudget(v); err != nil {
			skipped = append(skipped, fmt.Errorf("monthly budget: %w", err))
		}
	}

	// Profile, stored as one scalar key per field.
	name, err := legacyString(dump, "name")
	if err != nil {
		return nil, nil, err
	}
	email, err := legacyString(dump, "email")
	if err != nil {
		return nil, nil, err
	}
	l.UpdateProfile(name, email)

	if currency, err := legacyString(dump, "currency"); err != nil {
		return nil, nil, err
	} else if currency != "" {
		if err := l.SetCurrency(currency); err != nil {
			skipped = append(skipped, fmt.Errorf("currency: %w", err))
		}
	}
	if pic, err := legacyString(dump, "profile_pic"); err != nil {
		return nil, nil, err
	} else if pic != "" {
		if err := l.SetProfileImage(pic); err != nil {
			skipped = append(skipped, fmt.Errorf("profile image: %w", err))
		}
	}

	return l, skipped, nil
}
