package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	format string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the backup file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `inv fmt [-to legacy|jsonl]

  Validates and formats the backup file in place. Every record is read in
  strict mode: a single malformed record leaves the file untouched. Records
  keep their order, prices are written with two decimals.
  Use -to to convert the file to another format.

Usage Examples:
# Normalizes the default backup file.
$ inv fmt

# Converts it to JSON lines, keeping names with spaces.
$ inv fmt -to jsonl
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "to", "", "Format to write: legacy or jsonl. Defaults to the configured format.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	target := cfg.Format()
	if c.format != "" {
		target, err = inventory.ParseFormat(c.format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	report, err := inventory.FormatFile(cfg.Backup.File, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not format backup: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("backup formatted", "path", report.Path, "format", report.Format.String(), "count", report.Count)
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d products in %s.\n", report.Count, report.Path)
	return subcommands.ExitSuccess
}
