package review

import (
	"sync"
	"time"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
)

// draft ties a buffer to the user who generated it.
type draft struct {
	buffer    *Buffer
	userID    string
	createdAt time.Time
}

// Store keeps the live drafts of all open generate sessions. Purely
// in-process: a restart discards unsaved drafts, same as navigating away
// discards an unsaved review buffer.
type Store struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[uuid.UUID]*draft)}
}

// Create registers a new draft for userID and returns its id.
func (s *Store) Create(userID string, cards []model.Card) (uuid.UUID, *Buffer) {
	id := uuid.New()
	buffer := NewBuffer(cards)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = &draft{
		buffer:    buffer,
		userID:    userID,
		createdAt: time.Now(),
	}
	return id, buffer
}

// Get returns the draft buffer. Unknown ids return model.ErrNotFound; a draft
// belonging to another user returns model.ErrForbidden, so one user can never
// observe another's staged cards.
func (s *Store) Get(id uuid.UUID, userID string) (*Buffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if d.userID != userID {
		return nil, model.ErrForbidden
	}
	return d.buffer, nil
}

// Discard drops the draft. Discarding an unknown or foreign draft reports the
// same errors as Get.
func (s *Store) Discard(id uuid.UUID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return model.ErrNotFound
	}
	if d.userID != userID {
		return model.ErrForbidden
	}
	delete(s.drafts, id)
	return nil
}

// PruneOlderThan drops drafts created before the cutoff and reports how many
// were removed. Called periodically so abandoned sessions do not accumulate.
func (s *Store) PruneOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, d := range s.drafts {
		if d.createdAt.Before(cutoff) {
			delete(s.drafts, id)
			pruned++
		}
	}
	return pruned
}
