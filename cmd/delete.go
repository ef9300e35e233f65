package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	force bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete one or more card records" }
func (*deleteCmd) Usage() string {
	return `cct delete [-f] <id> [<id>...]

  Deletes the listed records. Asks for confirmation unless -f is given.
  Ids that do not exist are ignored.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Delete without asking for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids := f.Args()
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one id is required.")
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.force && !confirm(fmt.Sprintf("Delete %d record(s)?", len(ids))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	before := repo.Len()
	if err := repo.DeleteMany(ids); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %d record(s).\n", before-repo.Len())
	return subcommands.ExitSuccess
}
