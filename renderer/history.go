package renderer

import (
	"bytes"

	"github.com/etnz/cardfolio"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the cumulative realized-profit series to a
// markdown string, one row per sale day.
func HistoryMarkdown(points []cardfolio.ProfitPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Realized Profit Over Time")
	if len(points) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Cumulative Profit", "Cumulative Proceeds"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Profit.SignedString(),
			p.Proceeds.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
