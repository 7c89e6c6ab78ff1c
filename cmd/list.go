package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the products of the backup, most recent first" }
func (*listCmd) Usage() string {
	return `inv list

  Prints every product of the backup file as a table.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, l, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(cfg, renderer.Products(l.List(), l.Currency()))
	return subcommands.ExitSuccess
}
