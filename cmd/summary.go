package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pocketguard/tracker"
	"github.com/pocketguard/tracker/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	timeframe string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard" }
func (*summaryCmd) Usage() string {
	return `pg summary [-tf <month|year|all>]

  Displays the dashboard: balance, income and expenses for the timeframe,
  month-over-month movement, budget survival, goals and recent activity.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "tf", "month", "Timeframe: month, year or all.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := tracker.ParseTimeframe(c.timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report := tracker.NewDashboardReport(ledger, tf, Now())
	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}
