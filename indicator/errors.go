package indicator

import "errors"

var (
	ErrNoSeparator  = errors.New("no arity separator")
	ErrInvalidArity = errors.New("arity is not a non-negative integer")
	ErrEmptyName    = errors.New("empty name")
	ErrEmptyModule  = errors.New("empty module")
)

// ParseError is returned by Parse for malformed text
type ParseError struct {
	// Text is the complete text passed to Parse
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return `Invalid predicate indicator: "` + e.Text + `"`
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
