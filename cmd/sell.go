package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type sellCmd struct {
	id    string
	price float64
	date  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a card" }
func (*sellCmd) Usage() string {
	return `cct sell -id <id> -price <amount> [-date <date>]

  Marks an existing card as sold. The sale date defaults to today.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the card to mark sold (required)")
	f.Float64Var(&c.price, "price", 0, "Sale price (required, non-negative)")
	f.StringVar(&c.date, "date", "", "Sale date, defaults to today")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if c.price < 0 {
		fmt.Fprintln(os.Stderr, "Error: -price cannot be negative.")
		return subcommands.ExitUsageError
	}

	sellDate := cardfolio.Today()
	if c.date != "" {
		var err error
		sellDate, err = cardfolio.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
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

	if err := repo.Upsert(card.MarkSold(sellDate, money(c.price))); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded sale of %q on %s\n", card.Name, sellDate)
	return subcommands.ExitSuccess
}
