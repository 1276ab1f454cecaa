package cmdargs

// IterateEntries groups classified tokens into entries. Each passthrough token
// becomes its own PassthroughEntry, so the original order is preserved.
func (args Args) IterateEntries(yield func(entry Entry) (getNext bool)) {
	args.IterateTokens(func(token Token) bool {
		switch {
		case token.Role.Has(RoleOption):
			return yield(newOptionEntryFromToken(token))
		case token.Role.Has(RoleTerminator):
			return yield(NewTerminatorEntry())
		default:
			return yield(PassthroughEntry{token.Arg})
		}
	})
}
