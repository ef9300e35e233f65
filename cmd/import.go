package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the store with the records from a snapshot file" }
func (*importCmd) Usage() string {
	return `cct import [-f] <file>

  Parses and validates a snapshot, then replaces the entire store with its
  records. The replacement is destructive: when the store is not empty,
  confirmation is required unless -f is given. The snapshot is fully
  validated before the store is touched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite a non-empty store without asking")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one snapshot file is required.")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	file, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot file %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	cards, err := cardfolio.ImportSnapshot(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if repo.Len() > 0 && !c.force {
		prompt := fmt.Sprintf("Replace the %d record(s) in %s with the %d from %s?",
			repo.Len(), repo.Path(), len(cards), input)
		if !confirm(prompt) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := repo.ReplaceAll(cards); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d record(s) from %s\n", len(cards), input)
	return subcommands.ExitSuccess
}
