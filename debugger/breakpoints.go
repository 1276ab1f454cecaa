package debugger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cardinalby/go-argv-options/indicator"
)

// Frontend selects the debugger a spy point reports to
type Frontend int

const (
	FrontendPlain Frontend = iota
	FrontendGraphical
)

func (f Frontend) String() string {
	if f == FrontendGraphical {
		return "graphical"
	}
	return "plain"
}

type SpyPoint struct {
	Indicator indicator.Indicator
	Frontend  Frontend
}

// Breakpoints is an ordered set of spy points keyed by indicator
type Breakpoints struct {
	mu     sync.RWMutex
	points []SpyPoint
	logger *slog.Logger
}

// NewBreakpoints creates an empty set. If logger is nil, slog.Default() is used
func NewBreakpoints(logger *slog.Logger) *Breakpoints {
	if logger == nil {
		logger = slog.Default()
	}
	return &Breakpoints{logger: logger}
}

// Spy installs a spy point. Spying an indicator twice keeps one point using the
// latest frontend; `added` is false in that case
func (b *Breakpoints) Spy(ind indicator.Indicator, frontend Frontend) (added bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	point := SpyPoint{Indicator: ind, Frontend: frontend}
	b.logger.Debug("Spy point set.", "indicator", ind.String(), "frontend", frontend.String())
	for i := range b.points {
		if b.points[i].Indicator == ind {
			b.points[i] = point
			return false
		}
	}
	b.points = append(b.points, point)
	return true
}

// Nospy removes the spy point installed for exactly this indicator
func (b *Breakpoints) Nospy(ind indicator.Indicator) (removed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.points {
		if b.points[i].Indicator == ind {
			b.points = append(b.points[:i], b.points[i+1:]...)
			return true
		}
	}
	return false
}

// Points returns a copy of installed spy points in installation order
func (b *Breakpoints) Points() []SpyPoint {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]SpyPoint(nil), b.points...)
}

// Lookup returns the first spy point matching the predicate module:name/arity
func (b *Breakpoints) Lookup(module, name string, arity int) (SpyPoint, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, point := range b.points {
		if point.Indicator.Matches(module, name, arity) {
			return point, true
		}
	}
	return SpyPoint{}, false
}

// Check is called by instrumented code when entering module:name/arity.
// It reports a matching spy point to the log and returns it
func (b *Breakpoints) Check(ctx context.Context, module, name string, arity int) (SpyPoint, bool) {
	point, isHit := b.Lookup(module, name, arity)
	if isHit {
		b.logger.Log(ctx, slog.LevelInfo, "Spy point reached.",
			"indicator", point.Indicator.String(),
			"frontend", point.Frontend.String(),
			"module", module,
			"name", name,
			"arity", arity,
		)
	}
	return point, isHit
}
