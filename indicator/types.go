// Package indicator parses predicate indicators such as "lists:append/3" or
// "phrase//2" used to refer to callable units in debug directives.
package indicator

import (
	"strconv"
	"strings"
)

// Unbound is the Arity of an indicator that matches any arity
const Unbound = -1

// ArityKind distinguishes "Name/Arity" from "Name//Arity"
type ArityKind int

const (
	ArityOrdinary ArityKind = iota
	// ArityDCG is the arity of a grammar rule body, which is 2 less than the arity
	// of the predicate implementing it
	ArityDCG
)

// dcgExtraArgs is the number of hidden arguments of a grammar rule
const dcgExtraArgs = 2

func (k ArityKind) separator() string {
	if k == ArityDCG {
		return "//"
	}
	return "/"
}

// Indicator is the structured form of "[Module:]Name/Arity" or "[Module:]Name//Arity"
type Indicator struct {
	// Module is empty if not qualified
	Module string
	Name   string
	// Arity is Unbound if omitted
	Arity int
	Kind  ArityKind
}

// New creates an unqualified indicator with ordinary arity
func New(name string, arity int) Indicator {
	return Indicator{Name: name, Arity: arity}
}

// NewDCG creates an unqualified indicator with DCG arity
func NewDCG(name string, arity int) Indicator {
	return Indicator{Name: name, Arity: arity, Kind: ArityDCG}
}

func (ind Indicator) WithModule(module string) Indicator {
	ind.Module = module
	return ind
}

func (ind Indicator) HasArity() bool {
	return ind.Arity != Unbound
}

// PredicateArity returns the arity of the predicate the indicator refers to.
// For DCG indicators it includes the hidden arguments.
func (ind Indicator) PredicateArity() (arity int, ok bool) {
	if !ind.HasArity() {
		return 0, false
	}
	if ind.Kind == ArityDCG {
		return ind.Arity + dcgExtraArgs, true
	}
	return ind.Arity, true
}

// Matches reports whether a predicate module:name/arity is covered by the indicator.
// Unqualified indicators match any module, unbound arity matches any arity.
func (ind Indicator) Matches(module, name string, arity int) bool {
	if ind.Name != name || (ind.Module != "" && ind.Module != module) {
		return false
	}
	predArity, hasArity := ind.PredicateArity()
	return !hasArity || predArity == arity
}

func (ind Indicator) String() string {
	var sb strings.Builder
	if ind.Module != "" {
		sb.WriteString(ind.Module)
		sb.WriteByte(':')
	}
	sb.WriteString(ind.Name)
	sb.WriteString(ind.Kind.separator())
	if ind.HasArity() {
		sb.WriteString(strconv.Itoa(ind.Arity))
	} else {
		sb.WriteByte('_')
	}
	return sb.String()
}
