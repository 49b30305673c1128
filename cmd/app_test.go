package cmd

import (
	"context"
	"flag"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// useTempHome points the global flags at a fresh folder store.
func useTempHome(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	oldHome, oldDB, oldYes := *homePath, *dbFile, *assumeYes
	*homePath, *dbFile, *assumeYes = tmp, "", true
	t.Cleanup(func() {
		*homePath, *dbFile, *assumeYes = oldHome, oldDB, oldYes
	})
}

// run executes a subcommand with the given arguments.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestNowHonorsTestingOverride(t *testing.T) {
	t.Setenv("POCKETGUARD_TESTING_NOW", "2025-08-15 10:30:00")
	got := Now()
	want := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}

	// A malformed override falls back to the real clock.
	t.Setenv("POCKETGUARD_TESTING_NOW", "not a time")
	if got := Now(); got.Year() < 2025 {
		t.Errorf("fallback clock looks wrong: %s", got)
	}
}

func TestHomeResolution(t *testing.T) {
	old := *homePath
	t.Cleanup(func() { *homePath = old })

	*homePath = "/tmp/explicit"
	if got := home(); got != "/tmp/explicit" {
		t.Errorf("flag: got %q", got)
	}

	*homePath = ""
	t.Setenv("POCKETGUARD_HOME", "/tmp/from-env")
	if got := home(); got != "/tmp/from-env" {
		t.Errorf("env: got %q", got)
	}
}

func TestAddAndListRoundtrip(t *testing.T) {
	useTempHome(t)
	t.Setenv("POCKETGUARD_TESTING_NOW", "2025-08-15 10:30:00")

	if status := run(t, &addCmd{}, "-type", "expense", "-amount", "42.50", "-category", "Food", "-desc", "groceries"); status != subcommands.ExitSuccess {
		t.Fatalf("add: got %v", status)
	}
	if status := run(t, &addCmd{}, "-type", "income", "-amount", "3000", "-category", "Salary", "-date", "2025-08-01"); status != subcommands.ExitSuccess {
		t.Fatalf("add income: got %v", status)
	}

	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()

	txns := ledger.Transactions()
	if len(txns) != 2 {
		t.Fatalf("got %d transactions", len(txns))
	}
	if txns[0].Category != "Food" || txns[0].Date.String() != "2025-08-15" {
		t.Errorf("first transaction: %+v", txns[0])
	}
	if txns[1].Date.String() != "2025-08-01" {
		t.Errorf("second transaction: %+v", txns[1])
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	useTempHome(t)

	if status := run(t, &addCmd{}, "-type", "bribe", "-amount", "10", "-category", "Food"); status != subcommands.ExitUsageError {
		t.Errorf("bad type: got %v", status)
	}
	if status := run(t, &addCmd{}, "-amount", "ten", "-category", "Food"); status != subcommands.ExitUsageError {
		t.Errorf("bad amount: got %v", status)
	}
	if status := run(t, &addCmd{}, "-amount", "10", "-category", "Salary"); status != subcommands.ExitUsageError {
		t.Errorf("income category on an expense: got %v", status)
	}
}

func TestListRejectsInvertedRange(t *testing.T) {
	useTempHome(t)

	if status := run(t, &listCmd{}, "-from", "2025-08-31", "-to", "2025-08-01"); status != subcommands.ExitUsageError {
		t.Errorf("inverted range: got %v", status)
	}
	// Same day on both sides is a valid one-day window.
	if status := run(t, &listCmd{}, "-from", "2025-08-01", "-to", "2025-08-01"); status != subcommands.ExitSuccess {
		t.Errorf("one-day range: got %v", status)
	}
}

func TestRmDeletesAfterConfirmation(t *testing.T) {
	useTempHome(t)

	if status := run(t, &addCmd{}, "-amount", "10", "-category", "Food"); status != subcommands.ExitSuccess {
		t.Fatal("add failed")
	}
	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	id := ledger.Transactions()[0].ID
	closeStore()

	// -yes is set by useTempHome, so the prompt is skipped.
	if status := run(t, &rmCmd{}, "-id", formatID(id)); status != subcommands.ExitSuccess {
		t.Fatalf("rm: got %v", status)
	}

	ledger, _, closeStore, err = LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()
	if len(ledger.Transactions()) != 0 {
		t.Error("transaction still present after rm")
	}
}

func TestRmUnknownID(t *testing.T) {
	useTempHome(t)
	if status := run(t, &rmCmd{}, "-id", "42"); status != subcommands.ExitFailure {
		t.Errorf("got %v", status)
	}
	if status := run(t, &rmCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("missing -id: got %v", status)
	}
}

func TestGoalCommand(t *testing.T) {
	useTempHome(t)

	if status := run(t, &goalCmd{}, "-add", "Vacation", "-target", "1000"); status != subcommands.ExitSuccess {
		t.Fatalf("goal add: got %v", status)
	}

	ledger, _, closeStore, err := LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	goals := ledger.Goals()
	closeStore()
	if len(goals) != 1 || goals[0].Name != "Vacation" {
		t.Fatalf("goals: %+v", goals)
	}

	if status := run(t, &goalCmd{}, "-deposit", formatID(goals[0].ID), "-amount", "250"); status != subcommands.ExitSuccess {
		t.Fatalf("deposit: got %v", status)
	}
	ledger, _, closeStore, err = LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()
	if !ledger.Goals()[0].Current.Equal(decimal.NewFromInt(250)) {
		t.Errorf("deposit not persisted: %+v", ledger.Goals()[0])
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	tmp := t.TempDir()
	oldDB := *dbFile
	*dbFile = tmp + "/pocketguard.db"
	t.Cleanup(func() { *dbFile = oldDB })

	store, closeStore, err := OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()

	if err := store.Set("transactions", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get("transactions")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[]` {
		t.Errorf("got %q", got)
	}
	if _, err := os.Stat(*dbFile); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

// formatID renders an int64 for a command line.
func formatID(id int64) string { return strconv.FormatInt(id, 10) }
