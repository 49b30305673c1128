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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	search   string
	txType   string
	category string
	from     string
	to       string
	sort     string
	order    string
	ids      bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions with filters and sorting" }
func (*listCmd) Usage() string {
	return `pg list [-search <term>] [-type <t>] [-category <c>] [-from <d>] [-to <d>] [-sort <key>] [-order <asc|desc>]

  Lists transactions matching every given filter, with the net total of the
  selection. All filters are optional.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Substring to match in description, category, amount or date.")
	f.StringVar(&c.txType, "type", "", "Only income or only expense.")
	f.StringVar(&c.category, "category", "", "Only this category.")
	f.StringVar(&c.from, "from", "", "Earliest date, inclusive.")
	f.StringVar(&c.to, "to", "", "Latest date, inclusive.")
	f.StringVar(&c.sort, "sort", "date", "Sort key: date, amount, category or description.")
	f.StringVar(&c.order, "order", "asc", "Sort order: asc or desc.")
	f.BoolVar(&c.ids, "ids", false, "Print transaction IDs, for edit and rm.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter tracker.Filter
	filter.Search = c.search

	if c.txType != "" {
		typ, err := tracker.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Types = []tracker.TxType{typ}
	}
	if c.category != "" {
		filter.Categories = []string{c.category}
	}
	var from, to tracker.Date
	if c.from != "" {
		var err error
		if from, err = tracker.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		var err error
		if to, err = tracker.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	rng, err := tracker.NewRange(from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	filter.Range = rng

	key, err := tracker.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	order, err := tracker.ParseSortOrder(c.order)
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

	report := tracker.NewTransactionsReport(ledger, filter, tracker.SortSpec{Key: key, Order: order}, Now())

	if c.ids {
		for _, tx := range report.Transactions {
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", tx.ID, tx.Date, tx.Type, tx.Category, ledger.Money(tx.Amount))
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TransactionsMarkdown(report))
	return subcommands.ExitSuccess
}
