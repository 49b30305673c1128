package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	txType      string
	amount      string
	date        string
	clock       string
	category    string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `pg add -type <income|expense> -amount <amount> -category <category> [-date <date>] [-desc <text>]

  Records a new transaction. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Amount, always positive.")
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today.")
	f.StringVar(&c.clock, "time", "", "Optional time of day, e.g. 14:30.")
	f.StringVar(&c.category, "category", "", "Category, from the fixed set for the type.")
	f.StringVar(&c.description, "desc", "", "Free-text description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := tracker.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	now := Now()
	date := tracker.NewDate(now.Year(), now.Month(), now.Day())
	if c.date != "" {
		date, err = tracker.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.AddTransaction(tracker.Transaction{
		Type:        typ,
		Amount:      amount,
		Date:        date,
		Time:        c.clock,
		Category:    c.category,
		Description: c.description,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Valid %s categories: %s\n", typ, strings.Join(tracker.CategoriesFor(typ), ", "))
		closeStore()
		return subcommands.ExitUsageError
	}

	if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s %s (%s) with id %d\n", tx.Type, ledger.Money(tx.Amount), tx.Category, tx.ID)
	return subcommands.ExitSuccess
}
