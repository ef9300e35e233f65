// Package renderer turns cardfolio reports into markdown strings, to be
// printed raw or rendered for the terminal by the caller.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cardfolio"
	md "github.com/nao1215/markdown"
)

// Cards renders a record list to a markdown table.
func Cards(cards []cardfolio.Card) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(cards) == 0 {
		doc.PlainText("No cards found.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Name", "Series", "Bought", "Price", "Status", "Sold", "Sell Price", "Profit"},
	}
	for _, c := range cards {
		row := []string{
			shortID(c.ID),
			c.Name,
			c.Series,
			c.BuyDate.String(),
			c.BuyPrice.String(),
			"unsold",
			"",
			"",
			"",
		}
		if c.Sold {
			row[5] = "sold"
			if c.SellDate != nil {
				row[6] = c.SellDate.String()
			}
			if c.SellPrice != nil {
				row[7] = c.SellPrice.String()
				row[8] = c.Profit().SignedString()
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d card(s).", len(cards)))

	return doc.String()
}

// Card renders a single record in full, including notes.
func Card(c cardfolio.Card) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.Name)
	rows := [][]string{
		{"ID", c.ID},
		{"Series", c.Series},
		{"Bought", c.BuyDate.String()},
		{"Buy Price", c.BuyPrice.String()},
	}
	if c.Sold {
		if c.SellDate != nil {
			rows = append(rows, []string{"Sold", c.SellDate.String()})
		}
		if c.SellPrice != nil {
			rows = append(rows, []string{"Sell Price", c.SellPrice.String()})
			rows = append(rows, []string{"Profit", c.Profit().SignedString()})
		}
	}
	if c.ImageRef != "" {
		rows = append(rows, []string{"Image", fmt.Sprintf("embedded (%d bytes)", len(c.ImageRef))})
	}
	doc.Table(md.TableSet{Header: []string{"Field", "Value"}, Rows: rows})
	if c.Notes != "" {
		doc.PlainText(c.Notes)
	}

	return doc.String()
}

// shortID abbreviates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
