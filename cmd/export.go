package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full record set to a snapshot file" }
func (*exportCmd) Usage() string {
	return `cct export [-o <file>]

  Writes every record to a portable JSON snapshot. The default file name
  embeds today's date, e.g. card_backup_2026-08-31.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Snapshot file to write, defaults to card_backup_<date>.json")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = cardfolio.SnapshotName(cardfolio.Today())
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := cardfolio.ExportSnapshot(file, repo.LoadAll()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d record(s) to %s\n", repo.Len(), output)
	return subcommands.ExitSuccess
}
