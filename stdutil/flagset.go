package stdutil

import (
	"flag"
	"fmt"
	"strings"

	argvopts "github.com/cardinalby/go-argv-options"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalFlagNames is a map where key is a flag name and value indicates it's a bool flag
type FormalFlagNames map[string]bool

func (flags FormalFlagNames) Clone() FormalFlagNames {
	clone := make(FormalFlagNames, len(flags))
	for flagName, isBoolFlag := range flags {
		clone[flagName] = isBoolFlag
	}
	return clone
}

// GetFormalFlagNames returns a map where key is a flag name and value indicates it's a bool flag
func GetFormalFlagNames(flagSet *flag.FlagSet) FormalFlagNames {
	flags := make(FormalFlagNames)
	flagSet.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = isBoolFlag(f)
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	if boolFlag, ok := f.Value.(boolFlag); ok {
		return boolFlag.IsBoolFlag()
	}
	return false
}

// LookupFlag finds the flag for a canonical option name. Flags are matched by
// their canonical names, so option "dry_run" finds flag "dry-run"
func LookupFlag(flagSet *flag.FlagSet, optionName string) *flag.Flag {
	if f := flagSet.Lookup(optionName); f != nil {
		return f
	}
	if f := flagSet.Lookup(strings.ReplaceAll(optionName, "_", "-")); f != nil {
		return f
	}
	var found *flag.Flag
	flagSet.VisitAll(func(f *flag.Flag) {
		if found == nil && argvopts.CanonicalName(f.Name) == optionName {
			found = f
		}
	})
	return found
}

// ApplyOptions sets values of the flags defined in `flagSet` from normalized options
// in their order of occurrence, so the last option wins. Options without a matching
// flag are returned as `unknown`.
// Bool values can be assigned only to bool flags. Values of other flags are set
// using the textual form of option value.
func ApplyOptions(flagSet *flag.FlagSet, options argvopts.Options) (unknown argvopts.Options, err error) {
	for _, o := range options {
		f := LookupFlag(flagSet, o.Name)
		if f == nil {
			unknown = append(unknown, o)
			continue
		}
		if _, isBool := o.Value.Bool(); isBool && !isBoolFlag(f) {
			return nil, fmt.Errorf("%w: flag -%s needs a value", argvopts.ErrValueType, f.Name)
		}
		if err := flagSet.Set(f.Name, o.Value.Text()); err != nil {
			return nil, fmt.Errorf("flag -%s: %w", f.Name, err)
		}
	}
	return unknown, nil
}
