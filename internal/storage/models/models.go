// Package models defines the persistence records and store contracts. The
// pipeline itself never touches a store; the engine persists what the
// composer returns and the stores know nothing about scoring.
package models

import (
	"context"
	"errors"
	"time"

	"github.com/edu-assistant/backend/internal/knowledge"
)

var (
	// ErrConversationNotFound is returned when a feedback update names a
	// conversation that does not exist or belongs to another session.
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
)

// ConversationRecord is one question-answer exchange. FeedbackRating is
// the only field mutated after creation.
type ConversationRecord struct {
	ID             int64
	SessionID      string
	UserID         string
	Question       string
	Response       string
	Subject        string
	QuestionType   string
	Confidence     float64
	FeedbackRating *int
	CreatedAt      time.Time
}

// ConversationStore owns conversation history per session. Records are
// append-only; only the owning session may rate one.
type ConversationStore interface {
	SaveConversation(ctx context.Context, record *ConversationRecord) error
	History(ctx context.Context, sessionID string, limit int) ([]ConversationRecord, error)
	UpdateFeedback(ctx context.Context, sessionID string, conversationID int64, rating int) error
	Close() error
}

// KnowledgeRepository persists privileged knowledge additions. The
// in-memory variant has no implementation; the engine treats it as
// optional.
type KnowledgeRepository interface {
	InsertKnowledgeEntry(ctx context.Context, entry knowledge.Entry) error
	LoadKnowledgeEntries(ctx context.Context) ([]knowledge.Entry, error)
}
