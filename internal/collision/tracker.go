// Package collision tracks pack keys while a pack is being built.
package collision

import (
	"github.com/arloliu/geomcodec/errs"
)

// Tracker records every key added to a pack, rejects duplicates, and notes
// whether two distinct keys share an xxHash64 id.
type Tracker struct {
	keys         map[uint64][]string // id → keys with that id
	keyList      []string            // insertion order
	hasCollision bool
}

// NewTracker creates a new key tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:    make(map[uint64][]string),
		keyList: make([]string, 0),
	}
}

// TrackKey records key under id.
//
// Returns errs.ErrInvalidKey for an empty key and errs.ErrDuplicateKey when
// the same key was tracked before. Distinct keys with the same id are not an
// error; the pack stores key names, so lookups still resolve by name.
func (t *Tracker) TrackKey(key string, id uint64) error {
	if key == "" {
		return errs.ErrInvalidKey
	}

	existing := t.keys[id]
	for _, k := range existing {
		if k == key {
			return errs.ErrDuplicateKey
		}
	}

	if len(existing) > 0 {
		t.hasCollision = true
	}

	t.keys[id] = append(existing, key)
	t.keyList = append(t.keyList, key)

	return nil
}

// HasCollision reports whether two tracked keys share an id.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Keys returns the tracked keys in insertion order.
func (t *Tracker) Keys() []string {
	return t.keyList
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keyList)
}

// Reset clears all tracked keys so the tracker can serve another pack.
func (t *Tracker) Reset() {
	clear(t.keys)
	t.keyList = t.keyList[:0]
	t.hasCollision = false
}
