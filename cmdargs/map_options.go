package cmdargs

func (args Args) MapOptions(
	mapper func(option OptionEntry) (mapped Entry),
) Args {
	return args.MapEntries(func(entry Entry) Entry {
		if option, isOption := entry.(OptionEntry); isOption {
			return mapper(option)
		}
		return entry
	})
}
