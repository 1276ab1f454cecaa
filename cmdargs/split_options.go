package cmdargs

// SplitOptions moves the options accepted by `isSelected` to `selected`.
// All other tokens stay in `rest` in their original order.
func (args Args) SplitOptions(
	isSelected func(option OptionEntry) bool,
) (rest, selected Args) {
	rest = args.withArgs(nil)
	selected = args.withArgs(nil)

	args.IterateEntries(func(entry Entry) bool {
		if o, isOption := entry.(OptionEntry); isOption && isSelected(o) {
			selected.Args = append(selected.Args, entry.TokenStrings()...)
		} else {
			rest.Args = append(rest.Args, entry.TokenStrings()...)
		}
		return true
	})

	return rest, selected
}
