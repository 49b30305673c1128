package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
)

// investmentHeader is the column layout of a portfolio export.
var investmentHeader = []string{
	"Asset Name", "Type", "Amount Invested", "Current Value",
	"Gain/Loss %", "Date", "Notes",
}

// ExportInvestments writes the holdings as CSV. comma selects the field
// separator (',' or '\t' for spreadsheet paste).
func ExportInvestments(w io.Writer, investments []Investment, comma rune) error {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}

	if err := cw.Write(investmentHeader); err != nil {
		return fmt.Errorf("export error: cannot write header: %w", err)
	}
	for _, v := range investments {
		record := []string{
			v.Name,
			v.Type,
			v.Amount.StringFixed(2),
			v.CurrentValue.StringFixed(2),
			v.GainLossPercent().String(),
			v.Date.String(),
			v.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export error: cannot write investment %q: %w", v.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	return nil
}

// transactionHeader is the column layout of a transaction export.
var transactionHeader = []string{
	"Date", "Time", "Type", "Category", "Description", "Amount",
}

// ExportTransactions writes transactions as CSV in the order given.
func ExportTransactions(w io.Writer, transactions []Transaction, comma rune) error {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}

	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("export error: cannot write header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.Date.String(),
			tx.Time,
			string(tx.Type),
			tx.Category,
			tx.Description,
			tx.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export error: cannot write transaction %d: %w", tx.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	return nil
}
