package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
)

// lruTier is the in-process cache: a map plus an access-ordered list, bounded
// by entry count, behind one mutex. Lookups and inserts are O(1).
type lruTier struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List // front = most recently used
}

func newLRUTier(maxSize int) *lruTier {
	if maxSize <= 0 {
		maxSize = 2048
	}
	return &lruTier{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (l *lruTier) Get(_ context.Context, fingerprint string) (*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.entries[fingerprint]
	if !ok {
		return nil, nil
	}
	l.order.MoveToFront(el)
	return el.Value.(*Entry), nil
}

// peek reads without touching recency, for warm-path checks.
func (l *lruTier) peek(fingerprint string) (*Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.entries[fingerprint]
	if !ok {
		return nil, false
	}
	return el.Value.(*Entry), true
}

func (l *lruTier) Put(_ context.Context, entry *Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if el, ok := l.entries[entry.Fingerprint]; ok {
		existing := el.Value.(*Entry)
		// Replacing an entry never shortens its remaining lifetime.
		if existing.ExpiresAt.After(entry.ExpiresAt) {
			clone := *entry
			clone.ExpiresAt = existing.ExpiresAt
			el.Value = &clone
		} else {
			el.Value = entry
		}
		l.order.MoveToFront(el)
		return nil
	}

	l.entries[entry.Fingerprint] = l.order.PushFront(entry)
	for l.order.Len() > l.maxSize {
		oldest := l.order.Back()
		l.order.Remove(oldest)
		delete(l.entries, oldest.Value.(*Entry).Fingerprint)
	}
	return nil
}

func (l *lruTier) Invalidate(_ context.Context, prefix string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for fp, el := range l.entries {
		if strings.HasPrefix(fp, prefix) {
			l.order.Remove(el)
			delete(l.entries, fp)
		}
	}
	return nil
}

func (l *lruTier) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.order.Len()
}
