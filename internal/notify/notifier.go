package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/texcare/storefront/internal/models"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

const DefaultTTL = 5 * time.Second

// entry ties a notification to the session that caused it. The owner never
// leaves the package; clients only ever see their own notifications.
type entry struct {
	owner string
	models.Notification
}

// Notifier is the queue of transient user-facing notifications, keyed by
// session. Entries expire after a fixed delay and can be dismissed earlier by
// id, but only by the session that owns them.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []entry
	now   func() time.Time
}

func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

func (n *Notifier) Push(owner string, sev Severity, sku string, quantity int, message string) models.Notification {
	item := models.Notification{
		ID:        uuid.NewString(),
		Severity:  string(sev),
		SKU:       sku,
		Quantity:  quantity,
		Message:   message,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	n.prune()
	n.items = append(n.items, entry{owner: owner, Notification: item})
	n.mu.Unlock()
	return item
}

// Dismiss removes the entry when both id and owner match.
func (n *Notifier) Dismiss(owner, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, item := range n.items {
		if item.ID == id && item.owner == owner {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the owner's live notifications, oldest first.
func (n *Notifier) List(owner string) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.prune()
	out := make([]models.Notification, 0, len(n.items))
	for _, item := range n.items {
		if item.owner == owner {
			out = append(out, item.Notification)
		}
	}
	return out
}

// prune drops expired entries. Caller must hold the mutex.
func (n *Notifier) prune() {
	cutoff := n.now().Add(-n.ttl)
	live := n.items[:0]
	for _, item := range n.items {
		if item.CreatedAt.After(cutoff) {
			live = append(live, item)
		}
	}
	n.items = live
}
