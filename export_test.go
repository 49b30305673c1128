package tracker

import (
	"strings"
	"testing"
)

func TestExportTransactions(t *testing.T) {
	txns := []Transaction{
		{ID: 1, Type: Income, Amount: dec(3000), Date: day("2025-08-01"), Time: "09:15", Category: "Salary", Description: "August payroll"},
		{ID: 2, Type: Expense, Amount: dec(42.50), Date: day("2025-08-02"), Category: "Food", Description: "groceries, fruit"},
	}

	var buf strings.Builder
	if err := ExportTransactions(&buf, txns, ','); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Date,Time,Type,Category,Description,Amount" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "2025-08-01,09:15,income,Salary,August payroll,3000.00" {
		t.Errorf("row 1: %q", lines[1])
	}
	// A comma inside a field gets quoted.
	if lines[2] != `2025-08-02,,expense,Food,"groceries, fruit",42.50` {
		t.Errorf("row 2: %q", lines[2])
	}
}

func TestExportTransactionsTabSeparated(t *testing.T) {
	txns := []Transaction{
		{ID: 1, Type: Expense, Amount: dec(12), Date: day("2025-08-02"), Category: "Transport", Description: "metro"},
	}
	var buf strings.Builder
	if err := ExportTransactions(&buf, txns, '\t'); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Date\tTime\tType\tCategory\tDescription\tAmount" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "2025-08-02\t\texpense\tTransport\tmetro\t12.00" {
		t.Errorf("row: %q", lines[1])
	}
}

func TestExportInvestments(t *testing.T) {
	holdings := []Investment{
		{ID: 1, Name: "VWCE", Type: "ETF", Amount: dec(1000), CurrentValue: dec(1200), Date: day("2025-03-01"), Notes: "long term"},
	}
	var buf strings.Builder
	if err := ExportInvestments(&buf, holdings, ','); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Asset Name,Type,Amount Invested,Current Value,Gain/Loss %,Date,Notes" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "VWCE,ETF,1000.00,1200.00,20.00%,2025-03-01,long term" {
		t.Errorf("row: %q", lines[1])
	}
}

func TestExportEmptyWritesHeaderOnly(t *testing.T) {
	var buf strings.Builder
	if err := ExportInvestments(&buf, nil, ','); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); strings.Contains(got, "\n") {
		t.Errorf("expected header only, got:\n%s", buf.String())
	}
}
