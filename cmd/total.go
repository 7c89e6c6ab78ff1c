package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the total sales value" }
func (*totalCmd) Usage() string {
	return `inv total

  Prints the sum of price times quantity over every product of the backup.
`
}

func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (*totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, l, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(cfg, renderer.TotalSales(l.TotalSales(), l.Currency()))
	return subcommands.ExitSuccess
}
