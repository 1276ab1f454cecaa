package cmdargs

// OptionEntry is a single long option token
type OptionEntry struct {
	// arg is the source token. It's cleared when the entry is modified
	arg       string
	rawName   string
	name      string
	value     string
	isInline  bool
	isNegated bool
}

// NewOptionEntry creates an option with an inline value: "--name=value"
func NewOptionEntry(name, value string) OptionEntry {
	return OptionEntry{
		rawName:  name,
		name:     CanonicalName(name),
		value:    value,
		isInline: true,
	}
}

// NewBoolOptionEntry creates an option without value: "--name" or "--no-name"
func NewBoolOptionEntry(name string, isNegated bool) OptionEntry {
	return OptionEntry{
		rawName:   name,
		name:      CanonicalName(name),
		isNegated: isNegated,
	}
}

func newOptionEntryFromToken(token Token) OptionEntry {
	return OptionEntry{
		arg:       token.Arg,
		rawName:   token.RawName,
		name:      token.Name,
		value:     token.Value,
		isInline:  token.Role.Has(RoleInline),
		isNegated: token.Role.Has(RoleNegated),
	}
}

func (o OptionEntry) TokenStrings() []string {
	if o.arg != "" {
		return []string{o.arg}
	}
	switch {
	case o.isInline:
		return []string{longOptionPrefix + o.rawName + "=" + o.value}
	case o.isNegated:
		return []string{longOptionPrefix + negationPrefix + o.rawName}
	default:
		return []string{longOptionPrefix + o.rawName}
	}
}

func (o OptionEntry) TokensCount() int {
	return 1
}

func (o OptionEntry) Kind() EntryKind {
	return EntryKindOption
}

func (o OptionEntry) String() string {
	return o.TokenStrings()[0]
}

// Name returns the canonical option name
func (o OptionEntry) Name() string {
	return o.name
}

// RawName returns the name as written in the token (without "no-" for negated options)
func (o OptionEntry) RawName() string {
	return o.rawName
}

// Value returns the inline value. It's empty if IsInline() is false
func (o OptionEntry) Value() string {
	return o.value
}

func (o OptionEntry) IsInline() bool {
	return o.isInline
}

func (o OptionEntry) IsNegated() bool {
	return o.isNegated
}

func (o OptionEntry) Equals(other OptionEntry) bool {
	return o.name == other.name &&
		o.value == other.value &&
		o.isInline == other.isInline &&
		o.isNegated == other.isNegated
}

func (o OptionEntry) WithName(name string) OptionEntry {
	if o.rawName == name {
		return o
	}
	o.arg = ""
	o.rawName = name
	o.name = CanonicalName(name)
	return o
}

// WithValue makes the option inline with the given value
func (o OptionEntry) WithValue(value string) OptionEntry {
	if o.isInline && o.value == value {
		return o
	}
	o.arg = ""
	o.value = value
	o.isInline = true
	o.isNegated = false
	return o
}

// WithNoValue makes the option a bare flag: "--name" or, if `isNegated`, "--no-name"
func (o OptionEntry) WithNoValue(isNegated bool) OptionEntry {
	if !o.isInline && o.isNegated == isNegated {
		return o
	}
	o.arg = ""
	o.value = ""
	o.isInline = false
	o.isNegated = isNegated
	return o
}
