package directive

import (
	"errors"
	"fmt"

	argvopts "github.com/cardinalby/go-argv-options"
)

var ErrDirectiveValue = errors.New("invalid directive value")

// ValueError is returned when a directive option has a value of a kind the
// directive doesn't accept, e.g. "--spy" without "=indicator"
type ValueError struct {
	Name     string
	Value    argvopts.Value
	Expected string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("--%s: %s value expected, got %s %s", e.Name, e.Expected, e.Value.Kind(), e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrDirectiveValue
}
