package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/cardinalby/go-argv-options/indicator"
)

// CLI is the root command
type CLI struct {
	LogLevel  slog.Level `help:"Log level: debug, info, warn or error." default:"warn" env:"ARGVOPTS_LOG_LEVEL"`
	LogFormat string     `help:"Log output format." enum:"text,json" default:"text" env:"ARGVOPTS_LOG_FORMAT"`
	NoColor   bool       `help:"Disable colored diagnostics." env:"ARGVOPTS_NO_COLOR"`

	Normalize NormalizeCmd `cmd:"" help:"Normalize arguments given after \"--\" into options and positional arguments."`
	Indicator IndicatorCmd `cmd:"" help:"Parse predicate indicators."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("argvopts"),
		kong.Description("Inspect how scripts see their command line: long options, positional arguments and debug directives."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// help was printed
		return exitCode
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "argvopts: error: %s\n", err)
		return 2
	}

	app := &appContext{
		Stdin:  stdin,
		Stdout: stdout,
		Logger: newLogger(cli.LogLevel, cli.LogFormat, stderr),
	}
	if err := kctx.Run(app); err != nil {
		return report(stderr, err, newDiagnosticColor(cli.NoColor, stderr))
	}
	return 0
}

// newDiagnosticColor returns the color of error diagnostics written to w.
// Color is used only if w is a terminal
func newDiagnosticColor(noColor bool, w io.Writer) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if noColor || !isTerminal(w) {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// report writes the error diagnostic and returns the exit code for it
func report(w io.Writer, err error, c *color.Color) int {
	msg := err.Error()
	var parseErr *indicator.ParseError
	if errors.As(err, &parseErr) {
		msg = parseErr.Error()
	}
	_, _ = c.Fprintln(w, msg)
	return 1
}
