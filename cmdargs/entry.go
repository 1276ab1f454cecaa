package cmdargs

type EntryKind int

const (
	EntryKindOption EntryKind = iota
	EntryKindTerminator
	EntryKindPassthrough
)

type Entry interface {
	String() string
	TokenStrings() []string
	TokensCount() int
	Kind() EntryKind
}
