package cmdargs

// Args is an immutable view over a raw argument vector together with the
// settings that control how its tokens are classified.
type Args struct {
	Args       []string
	terminator bool
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithTerminator makes a bare "--" end option processing: it and every token
// after it are classified as passthrough.
// When disabled (default), "--" is an option with an empty name like any other
// token starting with "--".
func (args Args) WithTerminator(terminator bool) Args {
	args.terminator = terminator
	return args
}

func (args Args) HasTerminator() bool {
	return args.terminator
}

func (args Args) withArgs(rawArgs []string) Args {
	args.Args = rawArgs
	return args
}
