package debugger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode"
)

var ErrInvalidTopic = errors.New("invalid debug topic")

// Topic names a debug tracing channel, e.g. "http" or "cache(write)"
type Topic string

// ParseTopic parses the textual form of a topic. A leading '-' means the
// topic should be disabled rather than enabled.
func ParseTopic(text string) (topic Topic, enable bool, err error) {
	name := strings.TrimSpace(text)
	enable = true
	if rest, isDisable := strings.CutPrefix(name, "-"); isDisable {
		name = rest
		enable = false
	}
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", false, fmt.Errorf(`%w: "%s"`, ErrInvalidTopic, text)
	}
	return Topic(name), enable, nil
}

// Topics is a set of enabled tracing channels. Messages for enabled topics are
// written to the logger with a "topic" attribute.
type Topics struct {
	mu      sync.RWMutex
	enabled map[Topic]struct{}
	logger  *slog.Logger
}

// NewTopics creates an empty set. If logger is nil, slog.Default() is used
func NewTopics(logger *slog.Logger) *Topics {
	if logger == nil {
		logger = slog.Default()
	}
	return &Topics{
		enabled: make(map[Topic]struct{}),
		logger:  logger,
	}
}

func (t *Topics) Enable(topic Topic) {
	t.mu.Lock()
	t.enabled[topic] = struct{}{}
	t.mu.Unlock()
	t.logger.Debug("Debug topic enabled.", "topic", string(topic))
}

func (t *Topics) Disable(topic Topic) {
	t.mu.Lock()
	delete(t.enabled, topic)
	t.mu.Unlock()
	t.logger.Debug("Debug topic disabled.", "topic", string(topic))
}

func (t *Topics) Enabled(topic Topic) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, has := t.enabled[topic]
	return has
}

// List returns enabled topics sorted by name
func (t *Topics) List() []Topic {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]Topic, 0, len(t.enabled))
	for topic := range t.enabled {
		res = append(res, topic)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// Trace writes msg if the topic is enabled
func (t *Topics) Trace(ctx context.Context, topic Topic, msg string, args ...any) {
	if !t.Enabled(topic) {
		return
	}
	t.logger.With("topic", string(topic)).Log(ctx, slog.LevelInfo, msg, args...)
}

// Tracef writes a formatted message if the topic is enabled
func (t *Topics) Tracef(topic Topic, format string, args ...any) {
	if !t.Enabled(topic) {
		return
	}
	t.Trace(context.Background(), topic, fmt.Sprintf(format, args...))
}
