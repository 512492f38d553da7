package session

import (
	"errors"
	"sync"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
)

var (
	// ErrNotStarted means no session exists for the user yet; any event
	// other than /start is invalid for such a user.
	ErrNotStarted = errors.New("session not started")
	// ErrBusy means another event for the same user is mid-transition.
	ErrBusy = errors.New("session transition in progress")
)

type slot struct {
	run  sync.Mutex // serializes transitions for one user
	mu   sync.Mutex // guards sess
	sess models.Session
}

// Store maps user ids to their active sessions. Transitions for a single
// user are serialized through the slot run lock; a second concurrent event
// for the same user is rejected with ErrBusy instead of waiting, so a
// double-tap can never interleave with a running transition. Distinct users
// only share the map lock, which is held for lookups alone.
type Store struct {
	mu    sync.Mutex
	slots map[int64]*slot
}

func NewStore() *Store {
	return &Store{
		slots: make(map[int64]*slot),
	}
}

// Start creates a session for the user if one does not exist yet. The zero
// session starts in StageAwaitingLanguage. Idempotent.
func (s *Store) Start(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[userID]; !ok {
		s.slots[userID] = &slot{}
	}
}

// Update applies fn to the user's session under the per-user run lock. fn
// receives a copy; the copy is written back only when fn returns nil, so a
// rejected event leaves the session exactly as it was.
func (s *Store) Update(userID int64, fn func(*models.Session) error) error {
	s.mu.Lock()
	sl, ok := s.slots[userID]
	s.mu.Unlock()
	if !ok {
		return ErrNotStarted
	}

	if !sl.run.TryLock() {
		return ErrBusy
	}
	defer sl.run.Unlock()

	sl.mu.Lock()
	next := cloneSession(sl.sess)
	sl.mu.Unlock()

	if err := fn(&next); err != nil {
		return err
	}

	sl.mu.Lock()
	sl.sess = next
	sl.mu.Unlock()
	return nil
}

// Peek returns a copy of the last committed session. It does not take the
// run lock, so it never waits behind a slow transition.
func (s *Store) Peek(userID int64) (models.Session, bool) {
	s.mu.Lock()
	sl, ok := s.slots[userID]
	s.mu.Unlock()
	if !ok {
		return models.Session{}, false
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	return cloneSession(sl.sess), true
}

func cloneSession(sess models.Session) models.Session {
	out := sess
	if sess.Words != nil {
		out.Words = make([]string, len(sess.Words))
		copy(out.Words, sess.Words)
	}
	return out
}
