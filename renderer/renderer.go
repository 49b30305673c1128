// Package renderer turns the tracker's report structs into markdown
// documents. Each report gets its own renderer; the markdown goes to the
// terminal (through glamour) or straight to a file.
package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
)

// money formats a raw decimal in the report's currency.
func money(v decimal.Decimal, currency string) string {
	return tracker.M(v, currency).String()
}

// signedMoney formats with an explicit sign, for deltas and net flows.
func signedMoney(v decimal.Decimal, currency string) string {
	return tracker.M(v, currency).SignedString()
}
