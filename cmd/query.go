package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the products" }
func (*queryCmd) Usage() string {
	return `inv query <expression>

  Evaluates a JSONPath expression over the products of the backup, most
  recent first. See 'inv topic query'.

Usage Examples:
$ inv query '$[?(@.quantity < 5)].name'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing JSONPath expression")
		return subcommands.ExitUsageError
	}
	_, l, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	v, err := l.Query(strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, renderer.Value(v))
	return subcommands.ExitSuccess
}
