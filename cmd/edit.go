package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id     string
	name   string
	series string
	notes  string
	price  float64
	date   string
	image  string
	unsold bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing card record" }
func (*editCmd) Usage() string {
	return `cct edit -id <id> [-name <name>] [-series <series>] [-notes <text>] [-price <amount>] [-date <date>] [-image <file>] [-unsold]

  Updates an existing record. Only the flags provided change; the id and the
  creation time never change. -unsold clears a recorded sale.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the card to edit (required)")
	f.StringVar(&c.name, "name", "", "New display name")
	f.StringVar(&c.series, "series", "", "New set or series label")
	f.StringVar(&c.notes, "notes", "", "New notes")
	f.Float64Var(&c.price, "price", 0, "New purchase price")
	f.StringVar(&c.date, "date", "", "New purchase date")
	f.StringVar(&c.image, "image", "", "Path to an image file to embed, replacing the current one")
	f.BoolVar(&c.unsold, "unsold", false, "Clear the recorded sale")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	card, ok := repo.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no card with id %q.\n", c.id)
		return subcommands.ExitFailure
	}

	// Merge only the flags the user actually set into the complete record.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			card.Name = c.name
		case "series":
			card.Series = c.series
		case "notes":
			card.Notes = c.notes
		case "price":
			card.BuyPrice = money(c.price)
		case "date":
			d, err := cardfolio.ParseDate(c.date)
			if err != nil {
				flagErr = fmt.Errorf("invalid date: %w", err)
				return
			}
			card.BuyDate = d
		case "image":
			ref, err := cardfolio.ReadImageFile(c.image)
			if err != nil {
				flagErr = err
				return
			}
			card.ImageRef = ref
		case "unsold":
			card.Sold = false
			card.SellDate = nil
			card.SellPrice = nil
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", flagErr)
		return subcommands.ExitUsageError
	}

	if err := repo.Upsert(card); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Card(display(card)))
	return subcommands.ExitSuccess
}
