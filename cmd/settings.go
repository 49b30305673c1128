package cmd

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/pocketguard/tracker"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	budget   string
	currency string
	name     string
	email    string
	image    string
	wipe     bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change account settings" }
func (*settingsCmd) Usage() string {
	return `pg settings [-budget <amount>] [-currency <symbol>] [-name <n>] [-email <e>] [-image <file>] [-wipe]

  Without flags, prints the current settings. -wipe deletes ALL data after
  confirmation.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Monthly budget amount.")
	f.StringVar(&c.currency, "currency", "", "Display currency symbol or ISO code.")
	f.StringVar(&c.name, "name", "", "Display name.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.image, "image", "", "Profile image file, stored as a data URI (max 2MB).")
	f.BoolVar(&c.wipe, "wipe", false, "Delete all data and restore defaults.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, closeStore, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.wipe {
		outcome, err := confirm(ledger.Wipe())
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
		if err := tracker.Clear(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		closeStore()
		fmt.Println("All data deleted.")
		return subcommands.ExitSuccess
	}

	changed := false
	if c.budget != "" {
		v, err := decimal.NewFromString(c.budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing budget %q: %v\n", c.budget, err)
			closeStore()
			return subcommands.ExitUsageError
		}
		if err := ledger.SetMonthlyBudget(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		changed = true
	}
	if c.currency != "" {
		if err := ledger.SetCurrency(c.currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitUsageError
		}
		changed = true
	}
	if c.name != "" || c.email != "" {
		ledger.UpdateProfile(c.name, c.email)
		changed = true
	}
	if c.image != "" {
		data, err := os.ReadFile(c.image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		uri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
		if err := ledger.SetProfileImage(uri); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			return subcommands.ExitFailure
		}
		changed = true
	}

	if changed {
		if status := saveAndClose(ledger, store, closeStore); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Println("Settings updated.")
		return subcommands.ExitSuccess
	}

	defer closeStore()
	s := ledger.Settings()
	fmt.Printf("Name:           %s\n", s.Name)
	fmt.Printf("Email:          %s\n", s.Email)
	fmt.Printf("Currency:       %s\n", s.Currency)
	fmt.Printf("Monthly budget: %s\n", ledger.Money(s.MonthlyBudget))
	if s.ProfileImage != "" {
		fmt.Printf("Profile image:  %d bytes\n", len(s.ProfileImage))
	}
	return subcommands.ExitSuccess
}
