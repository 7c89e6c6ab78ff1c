package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type billCmd struct {
	date string
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "print a bill of every product" }
func (*billCmd) Usage() string {
	return `inv bill [-d "dd mm yyyy"]

  Prints every product with its line total and the grand total, stamped with
  the given date (today by default). See 'inv topic bill'.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date printed on the bill, as \"dd mm yyyy\" or d/m/y. Defaults to today.")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date := inventory.Today()
	if c.date != "" {
		var err error
		date, err = inventory.ParseBillDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	cfg, l, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(cfg, renderer.Bill(l.Bill(date), l.Currency()))
	return subcommands.ExitSuccess
}
