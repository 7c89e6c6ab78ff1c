// Package console implements the interactive menu of the inv tool.
//
// The Shell reads one answer per line and drives an inventory.Ledger through
// a numbered menu. Nothing is saved unless the backup option is chosen.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/docs"
)

// DefaultAccessCode guards the management menu when none is configured.
const DefaultAccessCode = 189

const separator = "-------------------------------------\n"

// errInput is returned by the read helpers when an answer cannot be parsed.
var errInput = errors.New("invalid input")

// Options configures a Shell.
type Options struct {
	AccessCode int // zero means DefaultAccessCode
	Color      bool
	BackupFile string
	Format     inventory.Format
	Strict     bool

	// Render turns markdown into terminal output. Nil prints markdown as is.
	Render func(markdown string) string
	Logger *slog.Logger
}

// Shell is an interactive session over a ledger.
type Shell struct {
	ledger *inventory.Ledger
	in     *bufio.Reader
	out    io.Writer
	opts   Options
	colors palette
	log    *slog.Logger
}

// New creates a Shell reading answers from in and writing to out.
func New(l *inventory.Ledger, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.BackupFile == "" {
		opts.BackupFile = inventory.DefaultBackupFile
	}
	if opts.AccessCode == 0 {
		opts.AccessCode = DefaultAccessCode
	}
	if opts.Render == nil {
		opts.Render = func(md string) string { return md }
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		ledger: l,
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		colors: palette{enabled: opts.Color},
		log:    logger,
	}
}

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

// boxed prints msg between two separators.
func (s *Shell) boxed(msg string) {
	s.printf("%s%s\n%s", separator, msg, separator)
}

func (s *Shell) markdown(md string) { s.printf("%s", s.opts.Render(md)) }

// readLine prompts and returns the next trimmed line, whatever its length.
// A last line without newline is returned, then io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInput, line)
	}
	return v, nil
}

func (s *Shell) readPrice(prompt string) (inventory.Price, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return inventory.Price{}, err
	}
	p, err := inventory.ParsePrice(line)
	if err != nil {
		return inventory.Price{}, fmt.Errorf("%w: %q is not a price", errInput, line)
	}
	return p, nil
}

func (s *Shell) readName(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	return inventory.TruncateName(line), nil
}

func (s *Shell) printMenu() {
	s.printf("\n-- %s --\n", s.colors.title("Inventory Management System"))
	s.printf("%s", s.colors.success(strings.Join([]string{
		"1. Add Product",
		"2. View Products",
		"3. Delete Product",
		"4. Generate Bill",
		"5. Calculate Total Sales",
		"6. Search Product",
		"7. Update Product",
		"8. Backup & Restore Inventory",
		"9. Management Info",
		"?. Help",
		"0. Exit",
	}, "\n")+"\n"))
	s.printf("%s", separator)
}

// Run loops over the menu until the exit choice, the end of the input or
// the cancellation of ctx. Reaching the end of the input is not an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, err := s.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		s.printf("%s", separator)

		if choice == "0" {
			s.printf("%s\n", s.colors.failure("Exiting..."))
			return nil
		}
		err = s.dispatch(choice)
		switch {
		case errors.Is(err, io.EOF):
			s.printf("\n")
			return nil
		case errors.Is(err, errInput):
			s.printf("%s\n", s.colors.failure(err.Error()))
		case err != nil:
			return err
		}
	}
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.add()
	case "2":
		s.view()
	case "3":
		return s.delete()
	case "4":
		return s.bill()
	case "5":
		s.total()
	case "6":
		return s.search()
	case "7":
		return s.update()
	case "8":
		return s.backupRestore()
	case "9":
		return s.management()
	case "?":
		s.help()
	default:
		s.invalidChoice()
	}
	return nil
}

func (s *Shell) invalidChoice() {
	s.printf("%s\n", s.colors.failure("Invalid choice. Please try again."))
}

func (s *Shell) help() {
	topic, err := docs.GetTopic("menu")
	if err != nil {
		s.printf("%s\n", s.colors.failure(err.Error()))
		return
	}
	s.markdown(topic)
}
