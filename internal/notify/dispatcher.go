package notify

import (
	"io"
	"log"
	"sync"
	"time"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Dispatcher renders transient user-facing messages. Implementations must
// not block the caller; dispatching is fire-and-forget.
type Dispatcher interface {
	Notify(message string, level Level)
}

// Notification is a single transient entry in the feed.
type Notification struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
}

// DismissAfter is how long a notification stays in the feed before it is
// auto-dismissed.
const DismissAfter = 3 * time.Second

// Feed is an in-memory Dispatcher. Entries expire after DismissAfter and are
// pruned when the feed is read, so no timer goroutine is needed.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	logger  *log.Logger
	now     func() time.Time
}

func NewFeed(logger *log.Logger) *Feed {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Feed{logger: logger, now: time.Now}
}

func (f *Feed) Notify(message string, level Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, Notification{
		Message:   message,
		Level:     level,
		CreatedAt: f.now(),
	})
	f.logger.Printf("notify: level=%s %s", level, message)
}

// Active returns the not-yet-dismissed notifications and drops expired ones.
func (f *Feed) Active() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := f.now().Add(-DismissAfter)
	kept := f.entries[:0]
	for _, n := range f.entries {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	f.entries = kept
	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Nop discards every notification. Used in tests.
type Nop struct{}

func (Nop) Notify(string, Level) {}
