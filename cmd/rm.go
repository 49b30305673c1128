package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pocketguard/tracker"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `pg rm -id <id>

  Deletes a transaction after confirmation. Use the global -yes flag to skip
  the prompt.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the transaction to delete (see 'pg list -ids').")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	del, err := ledger.DeleteTransaction(c.id)
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
	fmt.Printf("Deleted transaction %d\n", c.id)
	return subcommands.ExitSuccess
}
