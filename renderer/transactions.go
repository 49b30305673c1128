package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/pocketguard/tracker"
)

// TransactionsMarkdown renders a filtered transaction listing to a markdown
// string, with the live net total of the selection.
func TransactionsMarkdown(r *tracker.TransactionsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(r.Transactions) == 0 {
		doc.PlainText("No matching transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		rows = append(rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			tx.Description,
			signedMoney(tx.Signed(), r.Currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Category", "Description", "Amount"},
		Rows:   rows,
	})

	doc.PlainTextf("Net total: %s", signedMoney(r.NetTotal, r.Currency))

	return doc.String()
}
