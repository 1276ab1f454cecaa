package main

import (
	"github.com/cardinalby/go-argv-options/indicator"
)

// IndicatorCmd represents the indicator command
type IndicatorCmd struct {
	Format     string   `help:"Output format." enum:"yaml,json" default:"yaml"`
	Indicators []string `arg:"" name:"indicator" help:"Predicate indicators: [Module:]Name/Arity or [Module:]Name//Arity."`
}

type indicatorReport struct {
	Text   string `json:"text" yaml:"text"`
	Module string `json:"module,omitempty" yaml:"module,omitempty"`
	Name   string `json:"name" yaml:"name"`
	// Arity and PredicateArity are nil if unbound
	Arity          *int   `json:"arity" yaml:"arity"`
	Kind           string `json:"kind" yaml:"kind"`
	PredicateArity *int   `json:"predicate_arity" yaml:"predicate_arity"`
}

// Run parses all indicators before printing any of them
func (c *IndicatorCmd) Run(app *appContext) error {
	reports := make([]indicatorReport, 0, len(c.Indicators))
	for _, text := range c.Indicators {
		ind, err := indicator.Parse(text)
		if err != nil {
			return err
		}
		reports = append(reports, newIndicatorReport(text, ind))
	}
	return app.write(c.Format, reports)
}

func newIndicatorReport(text string, ind indicator.Indicator) indicatorReport {
	res := indicatorReport{
		Text:   text,
		Module: ind.Module,
		Name:   ind.Name,
		Kind:   "ordinary",
	}
	if ind.Kind == indicator.ArityDCG {
		res.Kind = "dcg"
	}
	if ind.HasArity() {
		arity := ind.Arity
		res.Arity = &arity
	}
	if predArity, ok := ind.PredicateArity(); ok {
		res.PredicateArity = &predArity
	}
	return res
}
