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

type summaryCmd struct {
	window string
	start  string
	end    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the collection's derived statistics" }
func (*summaryCmd) Usage() string {
	return `cct summary [-w <window> | -s <start> -d <end>]

  Shows totals, realized profit and ROI over the records in the window.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "", "Named date window (all, last-7-days, last-30-days, last-90-days, this-month, last-month, last-year)")
	f.StringVar(&c.start, "s", "", "Start date of a custom range. Overrides -w.")
	f.StringVar(&c.end, "d", "", "End date of a custom range, defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filter := cardfolio.Filter{Range: dateRange}
	summary := cardfolio.NewSummary(displayAll(filter.Select(repo.LoadAll())))

	label := "all"
	if dateRange != nil {
		label = dateRange.String()
	}
	printMarkdown(renderer.SummaryMarkdown(summary, label))
	return subcommands.ExitSuccess
}
