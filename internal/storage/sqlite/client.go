package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/storage/models"
	"github.com/edu-assistant/backend/pkg/logger"
	"github.com/edu-assistant/backend/pkg/retry"
)

// Client is the persistent variant of the conversation store and
// knowledge repository.
type Client struct {
	db       *sql.DB
	retryCfg retry.Config
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.Retryable = isTransient
	retryCfg.Logger = logger.Log

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db, retryCfg: retryCfg}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		user_id TEXT,
		question TEXT NOT NULL,
		response TEXT NOT NULL,
		subject TEXT,
		question_type TEXT,
		confidence REAL,
		feedback_rating INTEGER,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_session ON conversations(session_id);
	CREATE INDEX IF NOT EXISTS idx_conversations_created ON conversations(created_at);

	CREATE TABLE IF NOT EXISTS knowledge_entries (
		id INTEGER PRIMARY KEY,
		subject TEXT NOT NULL,
		topic TEXT NOT NULL,
		content TEXT NOT NULL,
		keywords TEXT,
		difficulty TEXT,
		is_active INTEGER DEFAULT 1,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_knowledge_subject ON knowledge_entries(subject);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

func (c *Client) SaveConversation(ctx context.Context, record *models.ConversationRecord) error {
	query := `
		INSERT INTO conversations (session_id, user_id, question, response, subject,
			question_type, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := retry.Do(ctx, c.retryCfg, func() error {
		result, err := c.db.ExecContext(
			ctx,
			query,
			record.SessionID,
			record.UserID,
			record.Question,
			record.Response,
			record.Subject,
			record.QuestionType,
			record.Confidence,
			record.CreatedAt.Unix(),
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		record.ID = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	logger.Debug("Conversation recorded",
		zap.Int64("conversation_id", record.ID),
		zap.String("session_id", record.SessionID),
		zap.Float64("confidence", record.Confidence),
	)

	return nil
}

func (c *Client) History(ctx context.Context, sessionID string, limit int) ([]models.ConversationRecord, error) {
	query := `
		SELECT id, session_id, user_id, question, response, subject,
			question_type, confidence, feedback_rating, created_at
		FROM conversations
		WHERE session_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var records []models.ConversationRecord
	for rows.Next() {
		var r models.ConversationRecord
		var userID, subject, questionType sql.NullString
		var rating sql.NullInt64
		var createdAt int64

		err := rows.Scan(&r.ID, &r.SessionID, &userID, &r.Question, &r.Response,
			&subject, &questionType, &r.Confidence, &rating, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		r.UserID = userID.String
		r.Subject = subject.String
		r.QuestionType = questionType.String
		if rating.Valid {
			v := int(rating.Int64)
			r.FeedbackRating = &v
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}

	return records, rows.Err()
}

func (c *Client) UpdateFeedback(ctx context.Context, sessionID string, conversationID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return models.ErrInvalidRating
	}

	query := `UPDATE conversations SET feedback_rating = ? WHERE id = ? AND session_id = ?`

	var affected int64
	err := retry.Do(ctx, c.retryCfg, func() error {
		result, err := c.db.ExecContext(ctx, query, rating, conversationID, sessionID)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	if affected == 0 {
		return models.ErrConversationNotFound
	}

	logger.Info("Feedback stored",
		zap.Int64("conversation_id", conversationID),
		zap.Int("rating", rating),
	)

	return nil
}

func (c *Client) InsertKnowledgeEntry(ctx context.Context, entry knowledge.Entry) error {
	keywordsJSON, _ := json.Marshal(entry.Keywords)

	query := `
		INSERT INTO knowledge_entries (id, subject, topic, content, keywords, difficulty, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?)
	`

	err := retry.Do(ctx, c.retryCfg, func() error {
		_, err := c.db.ExecContext(
			ctx,
			query,
			entry.ID,
			string(entry.Subject),
			entry.Topic,
			entry.Content,
			string(keywordsJSON),
			string(entry.Difficulty),
			time.Now().Unix(),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert knowledge entry: %w", err)
	}

	logger.Info("Knowledge entry inserted",
		zap.Int("entry_id", entry.ID),
		zap.String("subject", string(entry.Subject)),
		zap.String("topic", entry.Topic),
	)

	return nil
}

// LoadKnowledgeEntries returns the active persisted entries in insertion
// order, for merging over the built-in seed at startup.
func (c *Client) LoadKnowledgeEntries(ctx context.Context) ([]knowledge.Entry, error) {
	query := `
		SELECT id, subject, topic, content, keywords, difficulty
		FROM knowledge_entries
		WHERE is_active = 1
		ORDER BY id
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []knowledge.Entry
	for rows.Next() {
		var e knowledge.Entry
		var subject, difficulty, keywordsJSON string

		err := rows.Scan(&e.ID, &subject, &e.Topic, &e.Content, &keywordsJSON, &difficulty)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		e.Subject = knowledge.Subject(subject)
		e.Difficulty = knowledge.Difficulty(difficulty)
		json.Unmarshal([]byte(keywordsJSON), &e.Keywords)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// isTransient reports whether a write failed on lock contention, the one
// failure mode worth retrying under WAL.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
