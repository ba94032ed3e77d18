// Command fmtgen compiles printf-style format declarations into Go
// functions that build their output with straight-line appends.
//
// Usage:
//
//	fmtgen [--log-level L] [--log-format auto|text|json] <command> [flags]
//
// Commands:
//
//	gen          generate code for manifests or annotated packages
//	check        validate declarations and report stale generated files
//	plan         print the routines a declaration compiles to
//	preview      render one declaration with sample arguments
//	conversions  list the supported conversion characters
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) ExitCode() int {
	return e.code
}

// env is what every command runs against.
type env struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) error
}

var commands = []command{
	{"gen", "generate code for manifests or annotated packages", runGen},
	{"check", "validate declarations and report stale generated files", runCheck},
	{"plan", "print the routines a declaration compiles to", runPlan},
	{"preview", "render one declaration with sample arguments", runPreview},
	{"conversions", "list the supported conversion characters", runConversions},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var logLevel, logFormat string

	flagSet := pflag.NewFlagSet("fmtgen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flagSet.StringVar(&logFormat, "log-format", logFormatAuto, "log format (auto, text, json)")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return &exitError{code: 2}
	}

	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == rest[0] })
	if idx < 0 {
		return fmt.Errorf("unknown command %q (run fmtgen --help)", rest[0])
	}

	logger, err := newLogger(stderr, logLevel, logFormat)
	if err != nil {
		return err
	}

	cmd := commands[idx]

	return cmd.run(&env{
		stdout: stdout,
		stderr: stderr,
		logger: logger.With("command", cmd.name),
	}, rest[1:])
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	var sb strings.Builder

	sb.WriteString("usage: fmtgen [global flags] <command> [flags]\n\ncommands:\n")

	for _, c := range commands {
		fmt.Fprintf(&sb, "  %-12s %s\n", c.name, c.summary)
	}

	sb.WriteString("\nglobal flags:\n")
	sb.WriteString(flagSet.FlagUsages())

	_, _ = io.WriteString(w, sb.String())
}

// newCommandFlags returns the flag set of a subcommand.
func newCommandFlags(e *env, name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("fmtgen "+name, pflag.ContinueOnError)
	flagSet.SetOutput(e.stderr)

	return flagSet
}

// parseFlags parses args and turns --help into a clean exit.
func parseFlags(flagSet *pflag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
