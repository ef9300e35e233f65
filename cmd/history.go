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

type historyCmd struct {
	window string
	start  string
	end    string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show cumulative realized profit over time" }
func (*historyCmd) Usage() string {
	return `cct history [-w <window> | -s <start> -d <end>]

  Shows the cumulative realized profit and sale proceeds, one point per day
  with at least one sale.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "", "Named date window (all, last-7-days, last-30-days, last-90-days, this-month, last-month, last-year)")
	f.StringVar(&c.start, "s", "", "Start date of a custom range. Overrides -w.")
	f.StringVar(&c.end, "d", "", "End date of a custom range, defaults to today.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filter := cardfolio.Filter{Status: cardfolio.StatusSold, Range: dateRange}
	points := cardfolio.ProfitHistory(displayAll(filter.Select(repo.LoadAll())))

	printMarkdown(renderer.HistoryMarkdown(points))
	return subcommands.ExitSuccess
}
