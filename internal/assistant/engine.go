// Package assistant wires the question pipeline: validate → normalize and
// classify → rank knowledge entries → compose the response, then record
// the exchange. The pipeline itself is pure and all-or-nothing per
// request; persistence and caching happen after composition.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edu-assistant/backend/internal/analytics"
	"github.com/edu-assistant/backend/internal/cache/redis"
	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/metrics"
	"github.com/edu-assistant/backend/internal/nlp"
	"github.com/edu-assistant/backend/internal/ranking"
	"github.com/edu-assistant/backend/internal/respond"
	"github.com/edu-assistant/backend/internal/security"
	"github.com/edu-assistant/backend/internal/storage/models"
	"github.com/edu-assistant/backend/pkg/circuitbreaker"
	"github.com/edu-assistant/backend/pkg/logger"
	"github.com/edu-assistant/backend/pkg/utils"
)

// ErrInvalidInput wraps every validation rejection so the request layer
// can map it to a user-facing message.
var ErrInvalidInput = errors.New("invalid input")

type Engine struct {
	store         *knowledge.Store
	processor     *nlp.Processor
	ranker        ranking.Strategy
	composer      *respond.Composer
	validator     *security.Validator
	conversations models.ConversationStore
	knowledgeRepo models.KnowledgeRepository
	tracker       *analytics.Tracker

	cache        *redis.Client
	cacheBreaker *circuitbreaker.CircuitBreaker
	cacheTTL     time.Duration

	topK int
}

type Options struct {
	Store         *knowledge.Store
	Ranker        ranking.Strategy
	Composer      *respond.Composer
	Validator     *security.Validator
	Conversations models.ConversationStore
	// KnowledgeRepo is optional; the in-memory variant runs without one.
	KnowledgeRepo models.KnowledgeRepository
	Tracker       *analytics.Tracker
	// Cache is optional.
	Cache    *redis.Client
	CacheTTL time.Duration
	TopK     int
}

type AskRequest struct {
	Question  string
	SessionID string
	UserID    string
}

type AskResponse struct {
	ConversationID int64              `json:"conversation_id"`
	Question       string             `json:"question"`
	Response       string             `json:"response"`
	Subject        string             `json:"subject"`
	Topic          string             `json:"topic"`
	QuestionType   string             `json:"question_type"`
	Confidence     float64            `json:"confidence"`
	Suggestions    []string           `json:"suggestions"`
	Resources      []respond.Resource `json:"resources"`
	LatencyMS      int                `json:"latency_ms"`
	Cached         bool               `json:"cached"`
}

func NewEngine(opts Options) *Engine {
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}

	e := &Engine{
		store:         opts.Store,
		processor:     nlp.NewProcessor(),
		ranker:        opts.Ranker,
		composer:      opts.Composer,
		validator:     opts.Validator,
		conversations: opts.Conversations,
		knowledgeRepo: opts.KnowledgeRepo,
		tracker:       opts.Tracker,
		cache:         opts.Cache,
		cacheTTL:      opts.CacheTTL,
		topK:          opts.TopK,
	}

	if e.cache != nil {
		e.cacheBreaker = circuitbreaker.New("answer-cache", circuitbreaker.Config{
			Logger: logger.Log,
		})
	}

	metrics.KnowledgeEntries.Set(float64(opts.Store.Count()))

	return e
}

// Ask runs the full pipeline for one question and records the exchange.
func (e *Engine) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	startTime := time.Now()
	askID := uuid.New().String()

	if req.SessionID == "" {
		req.SessionID = "default"
	}

	if err := e.validator.Validate(req.Question); err != nil {
		logger.Warn("Question rejected",
			zap.String("ask_id", askID),
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		metrics.QuestionsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	question := security.Sanitize(req.Question)
	processed := e.processor.Process(question)

	logger.Info("Processing question",
		zap.String("ask_id", askID),
		zap.String("session_id", req.SessionID),
		zap.String("subject", string(processed.Subject)),
		zap.String("question_type", string(processed.QuestionType)),
	)

	result, cached := e.lookupCached(ctx, processed)
	if !cached {
		matches := e.ranker.Rank(processed, e.topK)
		logger.Debug("Entries ranked",
			zap.String("ask_id", askID),
			zap.Int("matches", len(matches)),
		)
		metrics.RankedResults.Observe(float64(len(matches)))
		if len(matches) == 0 {
			metrics.FallbackTotal.Inc()
		}

		result = e.composer.Compose(processed, matches)
		e.storeCached(ctx, processed, result)
	}

	record := &models.ConversationRecord{
		SessionID:    req.SessionID,
		UserID:       req.UserID,
		Question:     question,
		Response:     result.Response,
		Subject:      string(result.Subject),
		QuestionType: string(result.QuestionType),
		Confidence:   result.Confidence,
		CreatedAt:    time.Now(),
	}

	if err := e.conversations.SaveConversation(ctx, record); err != nil {
		metrics.QuestionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	e.tracker.RecordQuestion(req.SessionID, string(result.Subject), string(result.QuestionType), result.Confidence)

	latency := int(time.Since(startTime).Milliseconds())
	metrics.QuestionDuration.Observe(time.Since(startTime).Seconds())
	metrics.QuestionsTotal.WithLabelValues("answered").Inc()
	metrics.SubjectDetected.WithLabelValues(string(result.Subject)).Inc()
	metrics.QuestionTypeDetected.WithLabelValues(string(result.QuestionType)).Inc()
	metrics.ConfidenceScore.Observe(result.Confidence)

	logger.Info("Question answered",
		zap.String("ask_id", askID),
		zap.Int64("conversation_id", record.ID),
		zap.Float64("confidence", result.Confidence),
		zap.Int("latency_ms", latency),
		zap.Bool("cached", cached),
	)

	return &AskResponse{
		ConversationID: record.ID,
		Question:       question,
		Response:       result.Response,
		Subject:        string(result.Subject),
		Topic:          result.Topic,
		QuestionType:   string(result.QuestionType),
		Confidence:     result.Confidence,
		Suggestions:    result.Suggestions,
		Resources:      result.Resources,
		LatencyMS:      latency,
		Cached:         cached,
	}, nil
}

// History returns the session's most recent exchanges, newest first.
func (e *Engine) History(ctx context.Context, sessionID string, limit int) ([]models.ConversationRecord, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	return e.conversations.History(ctx, sessionID, limit)
}

// Feedback rates one of the session's own conversations.
func (e *Engine) Feedback(ctx context.Context, sessionID string, conversationID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, models.ErrInvalidRating.Error())
	}

	if err := e.conversations.UpdateFeedback(ctx, sessionID, conversationID, rating); err != nil {
		return err
	}

	e.tracker.RecordFeedback(sessionID, rating)
	metrics.FeedbackRating.Observe(float64(rating))
	return nil
}

// SubjectsSummary lists the subjects with their topics.
func (e *Engine) SubjectsSummary() []knowledge.SubjectSummary {
	return e.store.Summary()
}

// SessionStats returns the analytics summary for one session.
func (e *Engine) SessionStats(sessionID string) (analytics.SessionSummary, bool) {
	return e.tracker.SessionSummary(sessionID)
}

// AddEntry appends a knowledge entry, rebuilds the retrieval index and
// invalidates cached answers. Persisting to the repository is best-effort
// once the in-memory store has accepted the entry.
func (e *Engine) AddEntry(ctx context.Context, entry knowledge.Entry) (knowledge.Entry, error) {
	added, err := e.store.AddEntry(entry)
	if err != nil {
		return knowledge.Entry{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	e.ranker.Rebuild(e.store.All())
	metrics.KnowledgeEntries.Set(float64(e.store.Count()))

	if e.knowledgeRepo != nil {
		if err := e.knowledgeRepo.InsertKnowledgeEntry(ctx, added); err != nil {
			logger.Error("Failed to persist knowledge entry", zap.Error(err))
		}
	}

	if e.cache != nil {
		err := e.cacheBreaker.Execute(ctx, func() error {
			return e.cache.InvalidateAnswers(ctx)
		})
		if err != nil {
			logger.Warn("Failed to invalidate answer cache", zap.Error(err))
		}
	}

	logger.Info("Knowledge entry added",
		zap.Int("entry_id", added.ID),
		zap.String("subject", string(added.Subject)),
		zap.String("topic", added.Topic),
	)

	return added, nil
}

func (e *Engine) lookupCached(ctx context.Context, processed nlp.ProcessedQuestion) (respond.Result, bool) {
	if e.cache == nil {
		return respond.Result{}, false
	}

	var result respond.Result
	found := false
	err := e.cacheBreaker.Execute(ctx, func() error {
		var err error
		found, err = e.cache.GetAnswer(ctx, utils.HashString(processed.Normalized), &result)
		return err
	})
	if err != nil {
		logger.Debug("Answer cache lookup failed", zap.Error(err))
		return respond.Result{}, false
	}

	if found {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	return result, found
}

func (e *Engine) storeCached(ctx context.Context, processed nlp.ProcessedQuestion, result respond.Result) {
	if e.cache == nil {
		return
	}

	err := e.cacheBreaker.Execute(ctx, func() error {
		return e.cache.SetAnswer(ctx, utils.HashString(processed.Normalized), result, e.cacheTTL)
	})
	if err != nil {
		logger.Debug("Answer cache store failed", zap.Error(err))
	}
}
