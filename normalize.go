package argvopts

import (
	"github.com/cardinalby/go-argv-options/cmdargs"
)

// passwordOptionName is never coerced to a number
const passwordOptionName = "password"

// Normalize splits `args` into options extracted from tokens starting with
// "--" and the remaining tokens in their original order.
//
//	--name=value  -> name(value), value is Int, Float or String
//	--name        -> name(true)
//	--no-name     -> name(false)
//
// Every run of '-' and '_' in names is replaced by a single '_'.
// The value of "--password=..." is always a String.
func Normalize(args []string) (recognized Options, passthrough []string) {
	return NormalizeArgs(cmdargs.NewArgs(args))
}

// NormalizeArgs is like Normalize but respects the settings of `args`
func NormalizeArgs(args cmdargs.Args) (recognized Options, passthrough []string) {
	args.IterateEntries(func(entry cmdargs.Entry) bool {
		if o, isOption := entry.(cmdargs.OptionEntry); isOption {
			recognized = append(recognized, OptionFromEntry(o))
		} else {
			passthrough = append(passthrough, entry.TokenStrings()...)
		}
		return true
	})
	return recognized, passthrough
}

// OptionFromEntry converts a single option token to Option
func OptionFromEntry(entry cmdargs.OptionEntry) Option {
	o := Option{Name: entry.Name()}
	switch {
	case !entry.IsInline():
		o.Value = Bool(!entry.IsNegated())
	case o.Name == passwordOptionName:
		o.Value = String(entry.Value())
	default:
		o.Value = ParseValue(entry.Value())
	}
	return o
}

// ToArgs renders options back to "--name=value", "--name" and "--no-name" tokens.
// Values are written by their Text, so a String that reads as a number
// (String("007")) is normalized back as Int or Float
func (opts Options) ToArgs() []string {
	res := make([]string, 0, len(opts))
	for _, o := range opts {
		var entry cmdargs.OptionEntry
		if b, isBool := o.Value.Bool(); isBool {
			entry = cmdargs.NewBoolOptionEntry(o.Name, !b)
		} else {
			entry = cmdargs.NewOptionEntry(o.Name, o.Value.Text())
		}
		res = append(res, entry.String())
	}
	return res
}
