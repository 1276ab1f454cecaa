package debugger

import "sync/atomic"

// Interactive is a write-once flag. Once set it is never cleared.
// The zero value is unset.
type Interactive struct {
	set atomic.Bool
}

func (i *Interactive) Set() {
	i.set.Store(true)
}

func (i *Interactive) IsSet() bool {
	return i.set.Load()
}
