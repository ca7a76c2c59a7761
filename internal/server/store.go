package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
)

// Session holds the state of one authoring flow: the decoded workbook, tab
// selection and image configuration, plus the last converted or
// user-edited export document.
type Session struct {
	ID        string
	FileName  string
	Sheets    []models.Sheet
	Infos     []models.SheetInfo
	Options   vendorsheet.Options
	Document  []byte
	UpdatedAt time.Time
}

// Store is an in-memory session store with idle expiry. The tool is
// single-user, but every request runs on its own goroutine, so access goes
// through the store lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
// A non-positive ttl disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session under a fresh id.
func (s *Store) Create(fileName string, sheets []models.Sheet, infos []models.SheetInfo, opts vendorsheet.Options) string {
	sess := &Session{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Sheets:    sheets,
		Infos:     infos,
		Options:   opts,
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess.ID
}

// View runs fn with read access to the session. It returns false when the
// id is unknown or expired.
func (s *Store) View(id string, fn func(*Session)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return false
	}
	fn(sess)
	return true
}

// Update runs fn with write access to the session and refreshes its idle
// timer. It returns false when the id is unknown or expired.
func (s *Store) Update(id string, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return false
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
	return true
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, expired ones included until
// the next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions at the given interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("session sweep: removed %d expired session(s)", n)
			}
		}
	}
}

// expired must be called with the store lock held.
func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && time.Since(sess.UpdatedAt) > s.ttl
}
