package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Level of a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is one transient, auto-dismissing user feedback message.
type Notice struct {
	ID      uuid.UUID
	Level   Level
	Message string
	At      time.Time
}

// DefaultTTL matches the historical on-screen duration of a toast.
const DefaultTTL = 3 * time.Second

// Notifier schedules transient notices: each appears immediately and
// disappears after a fixed TTL with no user action. Overlapping notices
// stack; ordering is most-recent-last. Notify never blocks the caller.
type Notifier struct {
	log *logrus.Logger
	ttl time.Duration

	mu       sync.Mutex
	active   []Notice
	timers   map[uuid.UUID]*time.Timer
	disposed bool
}

func New(log *logrus.Logger, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		log:    log,
		ttl:    ttl,
		timers: map[uuid.UUID]*time.Timer{},
	}
}

func (n *Notifier) Success(message string) Notice { return n.push(LevelSuccess, message) }
func (n *Notifier) Error(message string) Notice   { return n.push(LevelError, message) }
func (n *Notifier) Info(message string) Notice    { return n.push(LevelInfo, message) }

func (n *Notifier) push(level Level, message string) Notice {
	notice := Notice{
		ID:      uuid.New(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		return notice
	}
	n.active = append(n.active, notice)
	n.timers[notice.ID] = time.AfterFunc(n.ttl, func() {
		n.dismiss(notice.ID)
	})
	n.mu.Unlock()

	if n.log != nil {
		n.log.WithFields(logrus.Fields{
			"level":   level,
			"message": message,
		}).Debug("notification shown")
	}
	return notice
}

func (n *Notifier) dismiss(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.timers, id)
	for i, notice := range n.active {
		if notice.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}

// Active returns the currently visible notices, oldest first.
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.active))
	copy(out, n.active)
	return out
}

// Dispose cancels all pending dismissal timers. Further notifications are
// dropped silently; nothing mutates after disposal.
func (n *Notifier) Dispose() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disposed = true
	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	n.active = nil
}
