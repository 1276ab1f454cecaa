package indicator

import (
	"strconv"
	"strings"
)

// Parse creates an Indicator from "[Module:]Name/Arity" or "[Module:]Name//Arity".
//
// Separators are tried in the order ":", "//", "/" and the text is split at the
// first occurrence of the separator. An empty arity ("foo/") leaves the arity
// Unbound. For nested qualification ("a:b:foo/1") the innermost module wins.
func Parse(text string) (Indicator, error) {
	ind, err := parse(text)
	if err != nil {
		return Indicator{}, &ParseError{Text: text, Err: err}
	}
	return ind, nil
}

func parse(text string) (Indicator, error) {
	if module, rest, isQualified := strings.Cut(text, ":"); isQualified {
		if module == "" {
			return Indicator{}, ErrEmptyModule
		}
		ind, err := parse(rest)
		if err != nil {
			return Indicator{}, err
		}
		if ind.Module == "" {
			ind.Module = module
		}
		return ind, nil
	}

	for _, kind := range []ArityKind{ArityDCG, ArityOrdinary} {
		name, arityText, found := strings.Cut(text, kind.separator())
		if !found {
			continue
		}
		if name == "" {
			return Indicator{}, ErrEmptyName
		}
		arity, err := parseArity(arityText)
		if err != nil {
			return Indicator{}, err
		}
		return Indicator{Name: name, Arity: arity, Kind: kind}, nil
	}

	return Indicator{}, ErrNoSeparator
}

func parseArity(text string) (int, error) {
	if text == "" {
		return Unbound, nil
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, ErrInvalidArity
		}
	}
	arity, err := strconv.Atoi(text)
	if err != nil {
		// out of range
		return 0, ErrInvalidArity
	}
	return arity, nil
}

// MustParse is like Parse but panics on error
func MustParse(text string) Indicator {
	ind, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ind
}
