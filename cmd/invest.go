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

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	add       string
	assetType string
	amount    string
	value     string
	date      string
	notes     string
	update    int64
	rm        int64
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "manage investment holdings" }
func (*investCmd) Usage() string {
	return `pg invest [-add <name> -type <t> -amount <a> -value <v>] [-update <id> -value <v>] [-rm <id>]

  Without flags, displays the portfolio with gains and ROI. Values are never
  fetched; update them with -update when prices move.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a new holding.")
	f.StringVar(&c.assetType, "type", "", "Asset type tag, e.g. Stocks or Crypto.")
	f.StringVar(&c.amount, "amount", "", "Amount invested (cost basis).")
	f.StringVar(&c.value, "value", "", "Current value of the holding.")
	f.StringVar(&c.date, "date", "", "Purchase date, defaults to today.")
	f.StringVar(&c.notes, "notes", "", "Free-text notes.")
	f.Int64Var(&c.update, "update", 0, "ID of the holding to update.")
	f.Int64Var(&c.rm, "rm", 0, "ID of the holding to delete.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		value := amount
		if c.value != "" {
			value, err = decimal.NewFromString(c.value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing value %q: %v\n", c.value, err)
				closeStore()
				return subcommands.ExitUsageError
			}
		}
		now := Now()
		date := tracker.NewDate(now.Year(), now.Month(), now.Day())
		if c.date != "" {
			date, err = tracker.ParseDate(c.date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
				closeStore()
				return subcommands.ExitUsageError
			}
		}
		v, err := ledger.AddInvestment(tracker.Investment{
			Name:         c.add,
			Type:         c.assetType,
			Amount:       amount,
			CurrentValue: value,
			Date:         date,
			Notes:        c.notes,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Added holding %q with id %d\n", v.Name, v.ID)
		return subcommands.ExitSuccess

	case c.update != 0:
		var holding tracker.Investment
		found := false
		for _, v := range ledger.Investments() {
			if v.ID == c.update {
				holding, found = v, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: investment %d not found\n", c.update)
			closeStore()
			return subcommands.ExitFailure
		}
		if c.value != "" {
			value, err := decimal.NewFromString(c.value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing value %q: %v\n", c.value, err)
				closeStore()
				return subcommands.ExitUsageError
			}
			holding.CurrentValue = value
		}
		if c.amount != "" {
			amount, err := decimal.NewFromString(c.amount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
				closeStore()
				return subcommands.ExitUsageError
			}
			holding.Amount = amount
		}
		if c.notes != "" {
			holding.Notes = c.notes
		}
		if err := ledger.UpdateInvestment(holding); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Updated holding %d\n", c.update)
		return subcommands.ExitSuccess

	case c.rm != 0:
		del, err := ledger.DeleteInvestment(c.rm)
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
		fmt.Printf("Deleted holding %d\n", c.rm)
		return subcommands.ExitSuccess

	default:
		defer closeStore()
		report := tracker.NewInvestmentsReport(ledger, Now())
		printMarkdown(renderer.InvestmentsMarkdown(report))
		return subcommands.ExitSuccess
	}
}
