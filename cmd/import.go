package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pocketguard/tracker"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy localStorage dump" }
func (*importCmd) Usage() string {
	return `pg import -file <dump.json>

  Imports a JSON export of the old browser build's localStorage. Replaces
  the current data after confirmation; invalid records are skipped and
  reported.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Path to the localStorage dump.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	dump, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump: %v\n", err)
		return subcommands.ExitFailure
	}
	defer dump.Close()

	imported, skipped, err := tracker.ImportLegacy(dump)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, skip := range skipped {
		fmt.Fprintf(os.Stderr, "Warning, skipped %v\n", skip)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Importing replaces whatever is in the store, so it goes through the
	// same confirmation as any other destructive operation.
	replace := tracker.NewReplaceCommand(imported, store)
	outcome, err := confirm(replace)
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
	if err := closeStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions, %d goals, %d investments (%d records skipped)\n",
		len(imported.Transactions()), len(imported.Goals()), len(imported.Investments()), len(skipped))
	return subcommands.ExitSuccess
}
