package cmdargs

import "strings"

// PassthroughEntry holds consecutive tokens that are not options.
// Entries yielded by IterateEntries contain exactly one token so that their
// positions relative to options are kept.
type PassthroughEntry []string

func (pe PassthroughEntry) String() string {
	return strings.Join(pe, " ")
}

func (pe PassthroughEntry) TokenStrings() []string {
	return pe
}

func (pe PassthroughEntry) TokensCount() int {
	return len(pe)
}

func (pe PassthroughEntry) Kind() EntryKind {
	return EntryKindPassthrough
}
