package usecase

import (
	"sync"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// EngagementStore holds the locally synchronized engagement state for the
// items a viewer session has visible: counters, the viewer's membership
// flags, the follow state of other users, and the comment lists replaced by
// the real-time subscription.
//
// The store is a pure in-memory transform with no network access. It is
// mutated by exactly two callers: the optimistic mutator (synchronously, on
// user action) and the real-time sync (asynchronously, gated by the
// interaction guard). The mutex serializes those two so no two mutations
// ever execute simultaneously.
type EngagementStore struct {
	mu       sync.Mutex
	items    map[string]entity.EngagementState
	follows  map[string]bool
	comments map[string][]*entity.Comment
}

// NewEngagementStore creates an empty store.
func NewEngagementStore() *EngagementStore {
	return &EngagementStore{
		items:    make(map[string]entity.EngagementState),
		follows:  make(map[string]bool),
		comments: make(map[string][]*entity.Comment),
	}
}

// State returns the tracked state for an item.
func (s *EngagementStore) State(contentID string) (entity.EngagementState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.items[contentID]
	return st, ok
}

// Seed installs the initial state for an item, replacing anything tracked.
func (s *EngagementStore) Seed(contentID string, st entity.EngagementState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[contentID] = st
}

// ApplyDelta adjusts one counter by delta. Counters clamp at zero; the
// operation never fails.
func (s *EngagementStore) ApplyDelta(contentID string, field entity.CounterField, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.items[contentID]
	switch field {
	case entity.CounterLikes:
		st.LikeCount = clampZero(st.LikeCount + delta)
	case entity.CounterComments:
		st.CommentCount = clampZero(st.CommentCount + delta)
	case entity.CounterShares:
		st.ShareCount = clampZero(st.ShareCount + delta)
	}
	s.items[contentID] = st
}

// SetMembership records whether the viewer is in one of the item's
// membership sets.
func (s *EngagementStore) SetMembership(contentID string, field entity.MembershipField, inSet bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.items[contentID]
	switch field {
	case entity.MembershipLiked:
		st.IsLiked = inSet
	case entity.MembershipSaved:
		st.IsSaved = inSet
	}
	s.items[contentID] = st
}

// ApplySnapshot overwrites an item's state from an authoritative push
// snapshot. When guarded is true the counter and membership fields presumed
// stale relative to an in-flight local interaction are kept as-is and only
// the unguarded fields are applied.
func (s *EngagementStore) ApplySnapshot(contentID string, snap entity.ContentSnapshot, viewerID string, guarded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.items[contentID]
	st.OwnerID = snap.AuthorID
	st.CommentCount = clampZero(snap.CommentCount)
	st.ShareCount = clampZero(snap.ShareCount)
	if !guarded {
		st.LikeCount = clampZero(snap.LikeCount)
		if viewerID != "" {
			st.IsLiked = containsID(snap.LikedBy, viewerID)
			st.IsSaved = containsID(snap.SavedBy, viewerID)
		}
	}
	s.items[contentID] = st
}

// HasFollow reports whether the viewer's follow state for a user is tracked
// at all.
func (s *EngagementStore) HasFollow(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.follows[userID]
	return ok
}

// IsFollowed returns the tracked follow state for a user.
func (s *EngagementStore) IsFollowed(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.follows[userID]
}

// SetFollowed records the viewer's follow state for a user.
func (s *EngagementStore) SetFollowed(userID string, followed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[userID] = followed
}

// Comments returns the item's comment list, newest first.
func (s *EngagementStore) Comments(contentID string) []*entity.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comments[contentID]
}

// ReplaceComments installs a full replacement comment list for an item.
func (s *EngagementStore) ReplaceComments(contentID string, list []*entity.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[contentID] = list
}

// Drop forgets an item entirely.
func (s *EngagementStore) Drop(contentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, contentID)
	delete(s.comments, contentID)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
