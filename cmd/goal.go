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

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	add     string
	target  string
	color   string
	deposit int64
	amount  string
	rm      int64
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "manage savings goals" }
func (*goalCmd) Usage() string {
	return `pg goal [-add <name> -target <amount>] [-deposit <id> -amount <a>] [-rm <id>]

  Without flags, displays the goals page with progress and time-to-goal
  projections. Deposits only grow a goal; there is no withdrawal.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a new goal.")
	f.StringVar(&c.target, "target", "", "Target amount for the new goal.")
	f.StringVar(&c.color, "color", "", "Optional display color tag for the new goal.")
	f.Int64Var(&c.deposit, "deposit", 0, "ID of the goal to deposit into.")
	f.StringVar(&c.amount, "amount", "", "Deposit amount.")
	f.Int64Var(&c.rm, "rm", 0, "ID of the goal to delete.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		target, err := decimal.NewFromString(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target %q: %v\n", c.target, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		g, err := ledger.AddGoal(tracker.Goal{Name: c.add, Target: target, Color: c.color})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Created goal %q with id %d\n", g.Name, g.ID)
		return subcommands.ExitSuccess

	case c.deposit != 0:
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if err := ledger.DepositToGoal(c.deposit, amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Deposited %s into goal %d\n", ledger.Money(amount), c.deposit)
		return subcommands.ExitSuccess

	case c.rm != 0:
		del, err := ledger.DeleteGoal(c.rm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		outcome, err := confirm(del)
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
		fmt.Printf("Deleted goal %d\n", c.rm)
		return subcommands.ExitSuccess

	default:
		defer closeStore()
		report := tracker.NewGoalsReport(ledger, Now())
		printMarkdown(renderer.GoalsMarkdown(report))
		return subcommands.ExitSuccess
	}
}
