package usecase

import (
	"sync"
	"time"
)

// InteractionCooldown is the default window after a local optimistic
// mutation during which push snapshots for the same entity are suppressed.
// 3s: long
// enough that a snapshot raced by our own in-flight write cannot clobber the
// optimistic value, short enough that real remote state is never ignored for
// long.
const InteractionCooldown = 3000 * time.Millisecond

// InteractionGuard suppresses incoming real-time snapshot overwrites for a
// short window after a local optimistic mutation, keyed per entity. Tracking
// a full entity -> timestamp map rather than only the most recently armed
// entity keeps the guard correct when several interactive items are visible
// at once (a video feed), where slot reuse would let a snapshot for one item
// slip past an interaction on another.
type InteractionGuard struct {
	mu       sync.Mutex
	armed    map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewInteractionGuard creates a guard with the given cooldown; zero or
// negative falls back to the standard window.
func NewInteractionGuard(cooldown time.Duration) *InteractionGuard {
	if cooldown <= 0 {
		cooldown = InteractionCooldown
	}
	return &InteractionGuard{
		armed:    make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Arm records an interaction with the entity at the current time.
func (g *InteractionGuard) Arm(entityID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed[entityID] = g.now()
}

// IsSuppressed reports whether a push snapshot for the entity arrived inside
// the cooldown window of an armed interaction.
func (g *InteractionGuard) IsSuppressed(entityID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	at, ok := g.armed[entityID]
	if !ok {
		return false
	}
	if g.now().Sub(at) < g.cooldown {
		return true
	}
	// Expired entries are dropped so the map does not grow with every
	// item the session ever touched.
	delete(g.armed, entityID)
	return false
}
