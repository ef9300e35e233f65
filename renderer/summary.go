package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cardfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary statistics to a markdown string.
func SummaryMarkdown(s *cardfolio.Summary, window string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Collection Summary (%s)", window))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cards", fmt.Sprintf("%d", s.Count)},
			{"Sold", fmt.Sprintf("%d", s.SoldCount)},
			{"Total Invested", s.TotalInvested.String()},
			{"Unsold Value", s.UnsoldValue.String()},
			{"Sale Proceeds", s.SaleProceeds.String()},
			{"Cost of Sold", s.CostOfSold.String()},
			{"Net Profit", s.NetProfit.SignedString()},
			{"ROI", s.ROI.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}
