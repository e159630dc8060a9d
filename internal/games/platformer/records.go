package platformer

import (
	"sync"
	"time"
)

// Records holds the best completion time per level for a session.
// Safe for concurrent use, as SSH sessions may share one.
type Records struct {
	mu   sync.RWMutex
	best map[int]time.Duration // Keyed by 1-based level number
}

// NewRecords creates an empty record set.
func NewRecords() *Records {
	return &Records{best: make(map[int]time.Duration)}
}

// Load merges previously stored best times, keeping the faster value.
func (r *Records) Load(best map[int]time.Duration) {
	for level, d := range best {
		r.Observe(level, d)
	}
}

// Best returns the best time for a level.
func (r *Records) Best(level int) (time.Duration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.best[level]
	return d, ok
}

// Observe records a completion time and reports whether it is a new best.
func (r *Records) Observe(level int, d time.Duration) bool {
	if d <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.best[level]; ok && prev <= d {
		return false
	}
	r.best[level] = d
	return true
}
