package cmdargs

import (
	"strings"
)

const (
	longOptionPrefix = "--"
	negationPrefix   = "no-"
	terminatorArg    = "--"
)

// IterateTokens classifies each argument in one left-to-right pass and calls
// yield for it until yield returns false
func (args Args) IterateTokens(yield func(token Token) bool) {
	afterTerminator := false

	for i, arg := range args.Args {
		token := Token{
			Arg:   arg,
			Index: i,
		}

		switch {
		case afterTerminator:
			token.Role = RolePassthrough
		case args.terminator && arg == terminatorArg:
			token.Role = RoleTerminator
			afterTerminator = true
		default:
			parsed := parseArg(arg)
			if !parsed.isOption {
				token.Role = RolePassthrough
				break
			}
			token.Role = RoleOption
			token.RawName = parsed.rawName
			token.Value = parsed.inlineValue
			if parsed.hasInlineValue {
				token.Role |= RoleInline
			} else if rest, isNegated := strings.CutPrefix(parsed.rawName, negationPrefix); isNegated {
				token.Role |= RoleNegated
				token.RawName = rest
			}
			token.Name = CanonicalName(token.RawName)
		}

		if !yield(token) {
			return
		}
	}
}

type parsedArg struct {
	isOption       bool
	hasInlineValue bool
	rawName        string
	inlineValue    string
}

func parseArg(arg string) (res parsedArg) {
	nameValue, isOption := strings.CutPrefix(arg, longOptionPrefix)
	if !isOption {
		return res
	}
	res.isOption = true
	res.rawName, res.inlineValue, res.hasInlineValue = strings.Cut(nameValue, "=")
	return res
}

// CanonicalName replaces every run of '-' and '_' in name with a single '_'
func CanonicalName(name string) string {
	if !strings.ContainsAny(name, "-_") {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name))
	inSeparator := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == '_' {
			if !inSeparator {
				sb.WriteByte('_')
				inSeparator = true
			}
			continue
		}
		inSeparator = false
		sb.WriteByte(c)
	}
	return sb.String()
}
