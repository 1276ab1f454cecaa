package cmdargs

// LookupOption returns the first option with the given canonical name
func (args Args) LookupOption(name string) (res OptionEntry, has bool) {
	name = CanonicalName(name)
	args.IterateEntries(func(entry Entry) bool {
		if o, isOption := entry.(OptionEntry); isOption && o.Name() == name {
			res = o
			has = true
			return false
		}
		return true
	})
	return res, has
}

// DeleteOption removes all options with the given canonical name
func (args Args) DeleteOption(name string) (res Args, deleted bool) {
	name = CanonicalName(name)
	res = args.MapOptions(func(o OptionEntry) Entry {
		if o.Name() == name {
			deleted = true
			return nil
		}
		return o
	})
	return res, deleted
}

// UpsertOption replaces every option named as `insert` with the result of
// `update`. If there is no such option, `insert` is prepended.
func (args Args) UpsertOption(
	insert OptionEntry,
	update func(old OptionEntry) (updated OptionEntry),
) Args {
	wasUpdated := false
	if res := args.MapOptions(func(o OptionEntry) Entry {
		if o.Name() == insert.Name() {
			wasUpdated = true
			return update(o)
		}
		return o
	}); wasUpdated {
		return res
	}

	return args.withArgs(append(insert.TokenStrings(), args.Args...))
}
