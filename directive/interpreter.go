// Package directive consumes the reserved debug options "interactive",
// "debug", "spy" and "gspy" and applies them to a debugger.Session.
package directive

import (
	"log/slog"

	argvopts "github.com/cardinalby/go-argv-options"
	"github.com/cardinalby/go-argv-options/cmdargs"
	"github.com/cardinalby/go-argv-options/debugger"
)

type Interpreter struct {
	session *debugger.Session
	logger  *slog.Logger
}

// NewInterpreter creates an Interpreter applying directives to `session`.
// If logger is nil, slog.Default() is used
func NewInterpreter(session *debugger.Session, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		session: session,
		logger:  logger,
	}
}

func (in *Interpreter) Session() *debugger.Session {
	return in.session
}

// Interpret applies directive options and returns the other options in their
// original order.
//
//	--interactive        sets session.Interactive
//	--debug=Topic        enables a tracing topic ("-Topic" disables it)
//	--spy=PI             installs a spy point for the predicate indicator PI
//	--gspy=PI            same using the graphical frontend
//
// It stops at the first invalid directive. Directives applied before it stay
// applied. A malformed indicator results in *indicator.ParseError.
func (in *Interpreter) Interpret(options argvopts.Options) (argvopts.Options, error) {
	var rest argvopts.Options
	for _, o := range options {
		apply, isDirective := handlers[o.Name]
		if !isDirective {
			rest = append(rest, o)
			continue
		}
		if err := apply(in.session, o.Name, o.Value); err != nil {
			return nil, err
		}
		in.logger.Debug("Debug directive applied.", "name", o.Name, "value", o.Value.Text())
	}
	return rest, nil
}

// Interpret applies directives from `options` to `session`, see Interpreter.Interpret
func Interpret(session *debugger.Session, options argvopts.Options) (argvopts.Options, error) {
	return NewInterpreter(session, nil).Interpret(options)
}

// StripDirectives separates directive tokens from the other tokens of `args`
// without interpreting them, e.g. before passing `rest` to another parser
func StripDirectives(args cmdargs.Args) (rest, directives cmdargs.Args) {
	return args.SplitOptions(func(o cmdargs.OptionEntry) bool {
		return IsDirective(o.Name())
	})
}
