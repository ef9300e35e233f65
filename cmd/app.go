// Package cmd implements the CLI application to manage a card collection.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

// Register registers all subcommands on the commander. A main package calls
// Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&sellCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&deleteCmd{}, "records")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&exportCmd{}, "snapshots")
	c.Register(&importCmd{}, "snapshots")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global flags for the app-wide settings.

var storeFile = flag.String("file", "cards.jsonl", "Path to the card store file (JSONL format)")
var displayCurrency = flag.String("currency", "USD", "Currency code used to display amounts")

// openRepository opens the app card store.
func openRepository() (*cardfolio.Repository, error) {
	return cardfolio.Open(*storeFile)
}

// money builds a display-currency Money from a CLI amount.
func money(v float64) cardfolio.Money {
	return cardfolio.M(v, *displayCurrency)
}

// display returns the card with its amounts carrying the configured display
// currency. Amounts are stored as bare numbers, so loaded records would
// otherwise render in the default currency whatever -currency says.
func display(c cardfolio.Card) cardfolio.Card {
	c.BuyPrice = c.BuyPrice.In(*displayCurrency)
	if c.SellPrice != nil {
		p := c.SellPrice.In(*displayCurrency)
		c.SellPrice = &p
	}
	return c
}

func displayAll(cards []cardfolio.Card) []cardfolio.Card {
	out := make([]cardfolio.Card, len(cards))
	for i, c := range cards {
		out[i] = display(c)
	}
	return out
}

// printMarkdown renders a markdown string for the terminal and prints it.
// If rendering fails the raw markdown is printed instead.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

// parseRange builds the date range for the report flags: -w names a window,
// -s/-d bound a custom range (start defaults open, end defaults to today).
// It returns nil when no date bound applies.
func parseRange(window, start, end string) (*cardfolio.Range, error) {
	if start != "" || end != "" {
		if window != "" {
			return nil, fmt.Errorf("-w cannot be used together with -s or -d")
		}
		r := cardfolio.Range{To: cardfolio.Today()}
		var err error
		if start != "" {
			if r.From, err = cardfolio.ParseDate(start); err != nil {
				return nil, fmt.Errorf("invalid start date: %w", err)
			}
		}
		if end != "" {
			if r.To, err = cardfolio.ParseDate(end); err != nil {
				return nil, fmt.Errorf("invalid end date: %w", err)
			}
		}
		return &r, nil
	}

	w, err := cardfolio.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	r, ok := w.Resolve(cardfolio.Today())
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// confirm asks the user for a yes/no confirmation on stdin.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
