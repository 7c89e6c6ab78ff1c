package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/console"
	"github.com/google/subcommands"
)

type shellCmd struct {
	restore bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive inventory console" }
func (*shellCmd) Usage() string {
	return `inv shell [-restore]

  Starts the menu driven console. The inventory starts empty and lives in
  memory: use the backup option of the menu to save it before exiting.
  See 'inv topic menu'.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.restore, "restore", false, "Restore the backup file before showing the menu.")
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	l := inventory.NewLedger(cfg.LedgerOptions()...)
	if c.restore {
		report, err := inventory.Restore(cfg.Backup.File, l, cfg.Backup.Strict)
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			fmt.Fprintf(os.Stderr, "Warning: backup file %q not found, starting empty.\n", cfg.Backup.File)
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		case report.Warning != nil:
			fmt.Fprintf(os.Stderr, "Warning: backup %q partially read: %v\n", report.Path, report.Warning)
		}
	}

	sh := console.New(l, stdin, stdout, console.Options{
		AccessCode: cfg.Console.AccessCode,
		Color:      cfg.Console.Color,
		BackupFile: cfg.Backup.File,
		Format:     cfg.Format(),
		Strict:     cfg.Backup.Strict,
		Render:     newRender(cfg.Console.Color),
		Logger:     logger,
	})
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
