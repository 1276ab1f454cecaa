package debugger

import "log/slog"

// Session groups the process-wide debug state shared between directive
// interpretation and the code deciding what to do after the main work is done
type Session struct {
	Interactive *Interactive
	Topics      *Topics
	Breakpoints *Breakpoints
}

func NewSession(logger *slog.Logger) *Session {
	return &Session{
		Interactive: &Interactive{},
		Topics:      NewTopics(logger),
		Breakpoints: NewBreakpoints(logger),
	}
}
