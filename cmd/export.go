package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/pocketguard/tracker"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	transactions bool
	investments  bool
	tabs         bool
	out          string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions or investments as CSV" }
func (*exportCmd) Usage() string {
	return `pg export (-transactions | -investments) [-tabs] [-out <file>]

  Writes CSV to stdout or to -out. -tabs switches to tab-separated output
  for spreadsheet paste.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.transactions, "transactions", false, "Export the transactions.")
	f.BoolVar(&c.investments, "investments", false, "Export the portfolio.")
	f.BoolVar(&c.tabs, "tabs", false, "Use tabs instead of commas.")
	f.StringVar(&c.out, "out", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.transactions == c.investments {
		fmt.Fprintln(os.Stderr, "Error: pick exactly one of -transactions or -investments.")
		return subcommands.ExitUsageError
	}

	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var w io.Writer = os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	comma := ','
	if c.tabs {
		comma = '\t'
	}

	if c.transactions {
		err = tracker.ExportTransactions(w, ledger.Transactions(), comma)
	} else {
		err = tracker.ExportInvestments(w, ledger.Investments(), comma)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
