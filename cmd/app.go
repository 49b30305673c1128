// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/pocketguard/tracker"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&listCmd{},
	&summaryCmd{},
	&cashflowCmd{},
	&budgetCmd{},
	&goalCmd{},
	&investCmd{},
	&exportCmd{},
	&settingsCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var homePath = flag.String("home", "", "Path to the tracker data folder (default $POCKETGUARD_HOME or ~/.pocketguard)")
var dbFile = flag.String("db", "", "Keep the data in a single sqlite file instead of a folder")
var assumeYes = flag.Bool("yes", false, "Answer yes to every confirmation prompt")

// LoadEnv reads an optional .env file next to the working directory, so the
// home and db settings can travel with a project checkout.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning, could not read .env: %v", err)
	}
}

// Now returns the current time, honoring the testing override used by the
// documentation scenarios.
func Now() time.Time {
	if v := os.Getenv("POCKETGUARD_TESTING_NOW"); v != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Now()
}

// home resolves the data folder.
func home() string {
	if *homePath != "" {
		return *homePath
	}
	if v := os.Getenv("POCKETGUARD_HOME"); v != "" {
		return v
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".pocketguard"
	}
	return filepath.Join(dir, ".pocketguard")
}

// OpenStore opens the persistence backend selected by the global flags:
// a sqlite file with -db, a folder of JSON files otherwise.
func OpenStore() (tracker.Store, func() error, error) {
	if *dbFile != "" {
		s, err := tracker.NewSQLiteStore(*dbFile)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	s, err := tracker.NewFileStore(home())
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}

// LoadLedger opens the store and decodes the full ledger from it. The
// returned close function must run after any Save.
func LoadLedger() (*tracker.Ledger, tracker.Store, func() error, error) {
	store, closeStore, err := OpenStore()
	if err != nil {
		return nil, nil, nil, err
	}
	ledger, err := tracker.LoadLedger(store)
	if err != nil {
		closeStore()
		return nil, nil, nil, err
	}
	return ledger, store, closeStore, nil
}

// confirm resolves a destructive command, prompting on the terminal unless
// -yes was given.
func confirm(c *tracker.Command) (tracker.Outcome, error) {
	if *assumeYes {
		return c.Confirm()
	}
	fmt.Printf("About to %s. Proceed? [y/N] ", c.Description())
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "y" || answer == "yes" {
			return c.Confirm()
		}
	}
	return c.Cancel()
}

// saveAndClose persists the ledger and releases the store, reporting the
// first error.
func saveAndClose(l *tracker.Ledger, s tracker.Store, closeStore func() error) subcommands.ExitStatus {
	if err := l.Save(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		closeStore()
		return subcommands.ExitFailure
	}
	if err := closeStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing store: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
