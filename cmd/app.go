// Package cmd implements the subcommands of the inv tool.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the inv tool.
var Commands = []subcommands.Command{
	&shellCmd{},
	&listCmd{},
	&findCmd{},
	&billCmd{},
	&totalCmd{},
	&queryCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
	backupFile = flag.String("backup-file", "", "Path to the backup file. Overrides backup.file")
	format     = flag.String("format", "", "Backup format written by the console: legacy or jsonl. Overrides backup.format")
	strict     = flag.Bool("strict", false, "Fail on any malformed record when reading the backup. Overrides backup.strict")
	verbose    = flag.Bool("v", false, "Log debug messages on stderr")
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	// newRender creates the markdown renderer of the terminal.
	newRender = glamourRender
)

// Settings loads the configuration and applies the global flags on top of it.
func Settings() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(*configFile, config.NewLogger(os.Stderr, "info"))
	if err != nil {
		return nil, nil, err
	}
	if *backupFile != "" {
		cfg.Backup.File = *backupFile
	}
	if *format != "" {
		if _, err := inventory.ParseFormat(*format); err != nil {
			return nil, nil, err
		}
		cfg.Backup.Format = *format
	}
	if *strict {
		cfg.Backup.Strict = true
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, config.NewLogger(os.Stderr, cfg.Log.Level), nil
}

// DecodeLedger reads the ledger from the configured backup file.
// A missing file yields an empty ledger.
func DecodeLedger(cfg *config.Config, logger *slog.Logger) (*inventory.Ledger, error) {
	l, report, err := inventory.LoadLedger(cfg.Backup.File, cfg.Backup.Strict, cfg.LedgerOptions()...)
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}
	if report.Warning != nil {
		logger.Warn("backup partially read", "path", report.Path, "error", report.Warning)
		fmt.Fprintf(os.Stderr, "Warning: backup %q partially read: %v\n", report.Path, report.Warning)
	}
	logger.Debug("inventory loaded", "path", cfg.Backup.File, "count", l.Len())
	return l, nil
}

// load combines Settings and DecodeLedger, reporting errors on stderr.
func load() (*config.Config, *inventory.Ledger, subcommands.ExitStatus) {
	cfg, logger, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	l, err := DecodeLedger(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return cfg, l, subcommands.ExitSuccess
}

// glamourRender returns a function rendering markdown for the terminal.
// Without color it uses the notty style.
func glamourRender(color bool) func(string) string {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			return md
		}
		return out
	}
}

// printMarkdown renders md to stdout.
func printMarkdown(cfg *config.Config, md string) {
	fmt.Fprint(stdout, newRender(cfg.Console.Color)(md))
}
