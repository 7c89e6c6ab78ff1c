package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type findCmd struct {
	id int
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "show the product with a given id" }
func (*findCmd) Usage() string {
	return `inv find -id <id>

  Prints the most recently added product with that id.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Product id to look for.")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isSet(f, "id") {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	cfg, l, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	p, err := l.Find(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Product with ID %d not found.\n", c.id)
		return subcommands.ExitFailure
	}
	printMarkdown(cfg, renderer.Product(p, l.Currency()))
	return subcommands.ExitSuccess
}

// isSet reports whether the flag name was given on the command line.
func isSet(f *flag.FlagSet, name string) (found bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return
}
