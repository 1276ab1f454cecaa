package argvopts

import (
	"fmt"
	"sort"
)

// Option is a normalized long option. Name is canonical: every run of '-' and
// '_' is replaced by a single '_'
type Option struct {
	Name  string `json:"name" yaml:"name"`
	Value Value  `json:"value" yaml:"value"`
}

func (o Option) String() string {
	return fmt.Sprintf("%s(%s)", o.Name, o.Value)
}

// Options keeps options in the order of occurrence. Duplicates are kept;
// lookup helpers use the last occurrence
type Options []Option

// Lookup returns the value of the last option with the given canonical name
func (opts Options) Lookup(name string) (Value, bool) {
	for i := len(opts) - 1; i >= 0; i-- {
		if opts[i].Name == name {
			return opts[i].Value, true
		}
	}
	return Value{}, false
}

// All returns values of all options with the given name in order of occurrence
func (opts Options) All(name string) []Value {
	var res []Value
	for _, o := range opts {
		if o.Name == name {
			res = append(res, o.Value)
		}
	}
	return res
}

func (opts Options) Has(name string) bool {
	_, has := opts.Lookup(name)
	return has
}

func (opts Options) GetBool(name string, def bool) bool {
	if v, has := opts.Lookup(name); has {
		if b, ok := v.Bool(); ok {
			return b
		}
	}
	return def
}

func (opts Options) GetInt(name string, def int64) int64 {
	if v, has := opts.Lookup(name); has {
		if i, ok := v.Int(); ok {
			return i
		}
	}
	return def
}

func (opts Options) GetFloat(name string, def float64) float64 {
	if v, has := opts.Lookup(name); has {
		if f, ok := v.Float(); ok {
			return f
		}
	}
	return def
}

// GetString returns the textual form of any non-bool value
func (opts Options) GetString(name string, def string) string {
	if v, has := opts.Lookup(name); has && v.Kind() != KindBool {
		return v.Text()
	}
	return def
}

// Map returns options as a map applying last-wins semantics
func (opts Options) Map() map[string]Value {
	res := make(map[string]Value, len(opts))
	for _, o := range opts {
		res[o.Name] = o.Value
	}
	return res
}

// Names returns sorted unique option names
func (opts Options) Names() []string {
	seen := make(map[string]struct{}, len(opts))
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		if _, has := seen[o.Name]; !has {
			seen[o.Name] = struct{}{}
			names = append(names, o.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Filter returns options for which keep returns true preserving order
func (opts Options) Filter(keep func(o Option) bool) Options {
	var res Options
	for _, o := range opts {
		if keep(o) {
			res = append(res, o)
		}
	}
	return res
}
