package directive

import (
	"fmt"

	argvopts "github.com/cardinalby/go-argv-options"
	"github.com/cardinalby/go-argv-options/debugger"
	"github.com/cardinalby/go-argv-options/indicator"
)

const (
	NameInteractive = "interactive"
	NameDebug       = "debug"
	NameSpy         = "spy"
	NameGSpy        = "gspy"
)

// handler applies a single directive to the session
type handler func(session *debugger.Session, name string, value argvopts.Value) error

var handlers = map[string]handler{
	NameInteractive: applyInteractive,
	NameDebug:       applyDebug,
	NameSpy:         spyWith(debugger.FrontendPlain),
	NameGSpy:        spyWith(debugger.FrontendGraphical),
}

// IsDirective reports whether options with the canonical name are consumed by Interpret
func IsDirective(name string) bool {
	_, has := handlers[name]
	return has
}

// Names returns the reserved directive names
func Names() []string {
	return []string{NameInteractive, NameDebug, NameSpy, NameGSpy}
}

func applyInteractive(session *debugger.Session, name string, value argvopts.Value) error {
	isInteractive, ok := value.Bool()
	if !ok {
		return &ValueError{Name: name, Value: value, Expected: "bool"}
	}
	if isInteractive {
		session.Interactive.Set()
	}
	return nil
}

func applyDebug(session *debugger.Session, name string, value argvopts.Value) error {
	text, err := textValue(name, value)
	if err != nil {
		return err
	}
	topic, enable, err := debugger.ParseTopic(text)
	if err != nil {
		return fmt.Errorf("--%s: %w", name, err)
	}
	if enable {
		session.Topics.Enable(topic)
	} else {
		session.Topics.Disable(topic)
	}
	return nil
}

func spyWith(frontend debugger.Frontend) handler {
	return func(session *debugger.Session, name string, value argvopts.Value) error {
		text, err := textValue(name, value)
		if err != nil {
			return err
		}
		ind, err := indicator.Parse(text)
		if err != nil {
			return err
		}
		session.Breakpoints.Spy(ind, frontend)
		return nil
	}
}

// textValue returns the textual form of string and numeric values
func textValue(name string, value argvopts.Value) (string, error) {
	if value.Kind() == argvopts.KindBool {
		return "", &ValueError{Name: name, Value: value, Expected: "string"}
	}
	return value.Text(), nil
}
