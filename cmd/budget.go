package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
	"github.com/pocketguard/tracker/renderer"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	set   string
	limit string
	reset bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or set category budget limits" }
func (*budgetCmd) Usage() string {
	return `pg budget [-set <category> -limit <amount>] [-reset]

  Without flags, displays the budget page. -set puts a monthly limit on an
  expense category (limit 0 removes it); -reset clears every limit after
  confirmation.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Expense category to set a limit on.")
	f.StringVar(&c.limit, "limit", "", "Monthly limit amount; 0 removes the limit.")
	f.BoolVar(&c.reset, "reset", false, "Clear all category limits.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.reset:
		outcome, err := confirm(ledger.ResetCategoryBudgets())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		if outcome == tracker.Cancelled {
			fmt.Println("Cancelled.")
			closeStore()
			return subcommands.ExitSuccess
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Println("All category limits cleared.")
		return subcommands.ExitSuccess

	case c.set != "":
		if c.limit == "" {
			fmt.Fprintln(os.Stderr, "Error: -set requires -limit.")
			closeStore()
			return subcommands.ExitUsageError
		}
		limit, err := decimal.NewFromString(c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing limit %q: %v\n", c.limit, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if err := ledger.SetCategoryBudget(c.set, limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		if limit.IsZero() {
			fmt.Printf("Removed limit on %s\n", c.set)
		} else {
			fmt.Printf("Set %s limit to %s per month\n", c.set, ledger.Money(limit))
		}
		return subcommands.ExitSuccess

	default:
		defer closeStore()
		report := tracker.NewBudgetReport(ledger, Now())
		printMarkdown(renderer.BudgetMarkdown(report))
		return subcommands.ExitSuccess
	}
}
