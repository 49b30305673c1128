package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/pocketguard/tracker"
	"github.com/pocketguard/tracker/renderer"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	year  int
	month int
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display yearly and daily cash-flow reports" }
func (*cashflowCmd) Usage() string {
	return `pg cashflow [-year <y>] [-month <1-12>]

  Displays the monthly cash flow of a year with savings rate, best and worst
  months, and the daily detail of one month.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Report year, defaults to the current one.")
	f.IntVar(&c.month, "month", 0, "Month for the daily view, defaults to the current one.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := Now()
	year := c.year
	if year == 0 {
		year = now.Year()
	}
	month := time.Month(c.month)
	if c.month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		fmt.Fprintf(os.Stderr, "Error: -month must be within 1-12, got %d\n", c.month)
		return subcommands.ExitUsageError
	}

	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report := tracker.NewCashFlowReport(ledger, year, month, now)
	printMarkdown(renderer.CashFlowMarkdown(report))
	return subcommands.ExitSuccess
}
