package main

import (
	"bufio"
	"strings"

	argvopts "github.com/cardinalby/go-argv-options"
	"github.com/cardinalby/go-argv-options/cmdargs"
	"github.com/cardinalby/go-argv-options/debugger"
	"github.com/cardinalby/go-argv-options/directive"
)

// NormalizeCmd represents the normalize command
type NormalizeCmd struct {
	Directives bool     `help:"Interpret debug directives: --interactive, --debug=Topic, --spy=PI, --gspy=PI."`
	Terminator bool     `help:"Treat a bare \"--\" among the arguments as the end of options."`
	Format     string   `help:"Output format." enum:"yaml,json" default:"yaml"`
	Args       []string `arg:"" optional:"" help:"Arguments to normalize."`
}

type normalizeReport struct {
	Options    argvopts.Options  `json:"options" yaml:"options"`
	Positional []string          `json:"positional" yaml:"positional"`
	Directives *directivesReport `json:"directives,omitempty" yaml:"directives,omitempty"`
}

type directivesReport struct {
	Interactive bool             `json:"interactive" yaml:"interactive"`
	Topics      []string         `json:"topics" yaml:"topics"`
	SpyPoints   []spyPointReport `json:"spy_points" yaml:"spy_points"`
}

type spyPointReport struct {
	Indicator string `json:"indicator" yaml:"indicator"`
	Frontend  string `json:"frontend" yaml:"frontend"`
}

// Run normalizes the arguments. If directives are enabled and --interactive was
// given, it keeps reading argument lines from stdin until EOF
func (c *NormalizeCmd) Run(app *appContext) error {
	session := debugger.NewSession(app.Logger)
	if err := c.process(app, session, c.Args); err != nil {
		return err
	}
	if !c.Directives || !session.Interactive.IsSet() {
		return nil
	}

	app.Logger.Info("Interactive mode, reading argument lines from stdin.")
	scanner := bufio.NewScanner(app.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.process(app, session, strings.Fields(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *NormalizeCmd) process(app *appContext, session *debugger.Session, args []string) error {
	options, positional := argvopts.NormalizeArgs(cmdargs.NewArgs(args).WithTerminator(c.Terminator))
	app.Logger.Debug("Arguments normalized.", "options", len(options), "positional", len(positional))

	res := normalizeReport{
		Options:    options,
		Positional: positional,
	}
	if c.Directives {
		rest, err := directive.NewInterpreter(session, app.Logger).Interpret(options)
		if err != nil {
			return err
		}
		res.Options = rest
		res.Directives = newDirectivesReport(session)
	}
	if res.Options == nil {
		res.Options = argvopts.Options{}
	}
	if res.Positional == nil {
		res.Positional = []string{}
	}
	return app.write(c.Format, res)
}

func newDirectivesReport(session *debugger.Session) *directivesReport {
	res := &directivesReport{
		Interactive: session.Interactive.IsSet(),
		Topics:      []string{},
		SpyPoints:   []spyPointReport{},
	}
	for _, topic := range session.Topics.List() {
		res.Topics = append(res.Topics, string(topic))
	}
	for _, point := range session.Breakpoints.Points() {
		res.SpyPoints = append(res.SpyPoints, spyPointReport{
			Indicator: point.Indicator.String(),
			Frontend:  point.Frontend.String(),
		})
	}
	return res
}
