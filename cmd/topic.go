package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/inventory/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	examples bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `inv topic [<topic>...]

  Show documentation for the given topics, '*' for all of them.
  Without topic, shows the list of topics.
  With -examples, prints the backup files shown in the topics instead,
  ready to be saved and restored.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.examples, "examples", false, "print the backup examples of the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	if c.examples {
		return c.printExamples(topics)
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, _, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(cfg, doc)

	return subcommands.ExitSuccess
}

func (c *topicCmd) printExamples(topics []string) subcommands.ExitStatus {
	if slices.Contains(topics, "*") {
		all, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		topics = all
	}
	for _, topic := range topics {
		examples, err := docs.Examples(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, ex := range examples {
			fmt.Fprint(stdout, ex.Content)
		}
	}
	return subcommands.ExitSuccess
}
