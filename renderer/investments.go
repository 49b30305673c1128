package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// InvestmentsMarkdown renders the portfolio report to a markdown string.
func InvestmentsMarkdown(r *tracker.InvestmentsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	doc.Table(md.TableSet{
		Header: []string{"Total Invested", "Current Value", "Gain/Loss", "ROI"},
		Rows: [][]string{{
			money(r.Summary.TotalInvested, r.Currency),
			money(r.Summary.TotalValue, r.Currency),
			signedMoney(r.Summary.TotalGainLoss, r.Currency),
			r.Summary.TotalROI.SignedString(),
		}},
	})

	if len(r.Holdings) == 0 {
		doc.PlainText("No investments yet.")
		return doc.String()
	}

	doc.H2("Holdings")
	rows := make([][]string, 0, len(r.Holdings))
	for _, v := range r.Holdings {
		rows = append(rows, []string{
			v.Name,
			v.Type,
			money(v.Amount, r.Currency),
			money(v.CurrentValue, r.Currency),
			signedMoney(v.GainLoss(), r.Currency),
			v.GainLossPercent().SignedString(),
			v.Date.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Type", "Invested", "Value", "Gain/Loss", "%", "Date"},
		Rows:   rows,
	})

	return doc.String()
}
