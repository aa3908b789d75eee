// Package memory is the single-process conversation store: per-session
// record lists guarded by one mutex, with per-session monotonic IDs. It
// backs deployments that run without SQLite and is the store used in
// tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/edu-assistant/backend/internal/storage/models"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string][]models.ConversationRecord
	nextID   map[string]int64
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]models.ConversationRecord),
		nextID:   make(map[string]int64),
	}
}

func (s *Store) SaveConversation(ctx context.Context, record *models.ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[record.SessionID]++
	record.ID = s.nextID[record.SessionID]
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	s.sessions[record.SessionID] = append(s.sessions[record.SessionID], *record)
	return nil
}

func (s *Store) History(ctx context.Context, sessionID string, limit int) ([]models.ConversationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.sessions[sessionID]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	// newest first
	out := make([]models.ConversationRecord, 0, limit)
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

func (s *Store) UpdateFeedback(ctx context.Context, sessionID string, conversationID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return models.ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.sessions[sessionID]
	for i := range records {
		if records[i].ID == conversationID {
			records[i].FeedbackRating = &rating
			return nil
		}
	}
	return models.ErrConversationNotFound
}

func (s *Store) Close() error {
	return nil
}
