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

type listCmd struct {
	search string
	status string
	window string
	start  string
	end    string
	sortBy string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list card records, filtered and sorted" }
func (*listCmd) Usage() string {
	return `cct list [-q <text>] [-status <all|sold|unsold>] [-w <window> | -s <start> -d <end>] [-sort <order>]

  Lists records. -q searches name and series, case-insensitive. A record is
  in the date range when its purchase date falls in it or, when sold, its
  sale date does. Orders: newest (default), date, date-desc, price,
  price-desc.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Search text over name and series")
	f.StringVar(&c.status, "status", "all", "Status filter (all, sold, unsold)")
	f.StringVar(&c.window, "w", "", "Named date window (all, last-7-days, last-30-days, last-90-days, this-month, last-month, last-year)")
	f.StringVar(&c.start, "s", "", "Start date of a custom range. Overrides -w.")
	f.StringVar(&c.end, "d", "", "End date of a custom range, defaults to today.")
	f.StringVar(&c.sortBy, "sort", "newest", "Sort order (newest, date, date-desc, price, price-desc)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := cardfolio.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	sortBy, err := cardfolio.ParseSortBy(c.sortBy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	dateRange, err := parseRange(c.window, c.start, c.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	filter := cardfolio.Filter{Search: c.search, Status: status, Range: dateRange}
	cards := filter.Select(repo.LoadAll())
	sortBy.Sort(cards)

	printMarkdown(renderer.Cards(displayAll(cards)))
	return subcommands.ExitSuccess
}
