package cmdargs

// MapEntries returns new Args built from the tokens of the entries returned by
// mapper. Returning nil from mapper drops the entry
func (args Args) MapEntries(
	mapper func(Entry) Entry,
) Args {
	var mapped []string
	args.IterateEntries(func(entry Entry) bool {
		if res := mapper(entry); res != nil {
			mapped = append(mapped, res.TokenStrings()...)
		}
		return true
	})
	return args.withArgs(mapped)
}
