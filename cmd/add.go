package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type addCmd struct {
	name   string
	series string
	notes  string
	price  float64
	date   string
	image  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record the purchase of a new card" }
func (*addCmd) Usage() string {
	return `cct add -name <name> -price <amount> [-date <date>] [-series <series>] [-notes <text>] [-image <file>]

  Records a new card purchase. The purchase date defaults to today.
  -image reads a local image file and embeds it in the record.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card display name (required)")
	f.StringVar(&c.series, "series", "", "Set or series label")
	f.StringVar(&c.notes, "notes", "", "Free-text notes")
	f.Float64Var(&c.price, "price", 0, "Purchase price (required, non-negative)")
	f.StringVar(&c.date, "date", "", "Purchase date, defaults to today")
	f.StringVar(&c.image, "image", "", "Path to an image file to embed")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	if c.price < 0 {
		fmt.Fprintln(os.Stderr, "Error: -price cannot be negative.")
		return subcommands.ExitUsageError
	}

	buyDate := cardfolio.Today()
	if c.date != "" {
		var err error
		buyDate, err = cardfolio.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	card := cardfolio.NewCard(c.name, c.series, buyDate, money(c.price))
	card.Notes = c.notes

	if c.image != "" {
		ref, err := cardfolio.ReadImageFile(c.image)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		card.ImageRef = ref
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := repo.Upsert(card); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q (%s) to %s\n", card.Name, card.ID, repo.Path())
	return subcommands.ExitSuccess
}
