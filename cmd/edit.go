package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id          int64
	txType      string
	amount      string
	date        string
	clock       string
	category    string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `pg edit -id <id> [-type <t>] [-amount <a>] [-date <d>] [-category <c>] [-desc <text>]

  Replaces the given fields of a transaction; unset flags keep their value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the transaction to edit (see 'pg list -ids').")
	f.StringVar(&c.txType, "type", "", "New type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.date, "date", "", "New date.")
	f.StringVar(&c.clock, "time", "", "New time of day.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var tx tracker.Transaction
	found := false
	for _, t := range ledger.Transactions() {
		if t.ID == c.id {
			tx, found = t, true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: transaction %d not found\n", c.id)
		closeStore()
		return subcommands.ExitFailure
	}

	if c.txType != "" {
		typ, err := tracker.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		tx.Type = typ
	}
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		tx.Amount = amount
	}
	if c.date != "" {
		date, err := tracker.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		tx.Date = date
	}
	if c.clock != "" {
		tx.Time = c.clock
	}
	if c.category != "" {
		tx.Category = c.category
	}
	if c.description != "" {
		tx.Description = c.description
	}

	if err := ledger.UpdateTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		return subcommands.ExitFailure
	}

	if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated transaction %d\n", tx.ID)
	return subcommands.ExitSuccess
}
