package directive

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	argvopts "github.com/cardinalby/go-argv-options"
	"github.com/cardinalby/go-argv-options/cmdargs"
	"github.com/cardinalby/go-argv-options/debugger"
	"github.com/cardinalby/go-argv-options/indicator"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter() *Interpreter {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewInterpreter(debugger.NewSession(logger), logger)
}

func TestInterpreter_Interpret(t *testing.T) {
	t.Parallel()

	in := newTestInterpreter()
	options := argvopts.Options{
		{Name: "interactive", Value: argvopts.Bool(true)},
		{Name: "foo", Value: argvopts.String("bar")},
	}
	rest, err := in.Interpret(options)
	require.NoError(t, err)
	require.Equal(t, argvopts.Options{{Name: "foo", Value: argvopts.String("bar")}}, rest)
	require.True(t, in.Session().Interactive.IsSet())

	// idempotent on its own output
	again, err := in.Interpret(rest)
	require.NoError(t, err)
	require.Equal(t, rest, again)
	require.True(t, in.Session().Interactive.IsSet())
}

func TestInterpreter_AllDirectives(t *testing.T) {
	t.Parallel()

	in := newTestInterpreter()
	options, positional := argvopts.Normalize([]string{
		"script.pl", "--limit=3", "--debug=http", "--spy=lists:append/3", "--verbose",
		"--gspy=phrase//2", "--debug=42", "--no-interactive", "--name=x",
	})
	require.Equal(t, []string{"script.pl"}, positional)

	rest, err := in.Interpret(options)
	require.NoError(t, err)
	require.Equal(t, argvopts.Options{
		{Name: "limit", Value: argvopts.Int(3)},
		{Name: "verbose", Value: argvopts.Bool(true)},
		{Name: "name", Value: argvopts.String("x")},
	}, rest)

	session := in.Session()
	require.False(t, session.Interactive.IsSet())
	require.Equal(t, []debugger.Topic{"42", "http"}, session.Topics.List())
	require.Equal(t, []debugger.SpyPoint{
		{Indicator: indicator.New("append", 3).WithModule("lists"), Frontend: debugger.FrontendPlain},
		{Indicator: indicator.NewDCG("phrase", 2), Frontend: debugger.FrontendGraphical},
	}, session.Breakpoints.Points())
}

func TestInterpreter_DisableTopic(t *testing.T) {
	t.Parallel()

	in := newTestInterpreter()
	options, _ := argvopts.Normalize([]string{"--debug=http", "--debug=db", "--debug=-http"})
	rest, err := in.Interpret(options)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, []debugger.Topic{"db"}, in.Session().Topics.List())
}

func TestInterpreter_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expErr         error
		expIndicator   string
		expInteractive bool
	}{
		{
			name:         "malformed spy",
			args:         []string{"--spy=badtext"},
			expErr:       indicator.ErrNoSeparator,
			expIndicator: "badtext",
		},
		{
			name:           "malformed gspy after applied directive",
			args:           []string{"--interactive", "--gspy=foo/x"},
			expErr:         indicator.ErrInvalidArity,
			expIndicator:   "foo/x",
			expInteractive: true,
		},
		{
			name:   "bare debug",
			args:   []string{"--debug"},
			expErr: ErrDirectiveValue,
		},
		{
			name:   "negated spy",
			args:   []string{"--no-spy"},
			expErr: ErrDirectiveValue,
		},
		{
			name:   "interactive with value",
			args:   []string{"--interactive=yes"},
			expErr: ErrDirectiveValue,
		},
		{
			name:   "blank topic",
			args:   []string{"--debug="},
			expErr: debugger.ErrInvalidTopic,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := newTestInterpreter()
			options, _ := argvopts.Normalize(tc.args)
			rest, err := in.Interpret(options)
			require.ErrorIs(t, err, tc.expErr)
			require.Nil(t, rest)
			require.Equal(t, tc.expInteractive, in.Session().Interactive.IsSet())

			var parseErr *indicator.ParseError
			if tc.expIndicator != "" {
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, tc.expIndicator, parseErr.Text)
				require.Contains(t, err.Error(), tc.expIndicator)
			} else {
				require.False(t, errors.As(err, &parseErr))
			}
		})
	}
}

func TestValueError(t *testing.T) {
	t.Parallel()

	_, err := Interpret(debugger.NewSession(nil), argvopts.Options{{Name: "spy", Value: argvopts.Bool(true)}})
	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	require.Equal(t, "spy", valueErr.Name)
	require.Equal(t, "--spy: string value expected, got bool true", err.Error())
}

func TestIsDirective(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		require.True(t, IsDirective(name), name)
	}
	require.False(t, IsDirective("nodebug"))
	require.False(t, IsDirective("Debug"))
}

func TestStripDirectives(t *testing.T) {
	t.Parallel()

	args := cmdargs.NewArgs([]string{"a", "--debug=x", "--limit=1", "--no-interactive", "--", "--spy=f/1"}).
		WithTerminator(true)
	rest, directives := StripDirectives(args)
	require.Equal(t, []string{"a", "--limit=1", "--", "--spy=f/1"}, rest.Args)
	require.Equal(t, []string{"--debug=x", "--no-interactive"}, directives.Args)
}
