package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edu-assistant/backend/internal/assistant"
	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/storage/models"
	"github.com/edu-assistant/backend/pkg/logger"
)

type AssistantHandler struct {
	engine *assistant.Engine
}

func NewAssistantHandler(engine *assistant.Engine) *AssistantHandler {
	return &AssistantHandler{
		engine: engine,
	}
}

func (h *AssistantHandler) HandleAsk(c *fiber.Ctx) error {
	var req struct {
		Question  string `json:"question"`
		SessionID string `json:"session_id"`
		UserID    string `json:"user_id"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.SessionID == "" {
		req.SessionID = c.Get("X-Session-ID")
	}

	response, err := h.engine.Ask(c.Context(), assistant.AskRequest{
		Question:  req.Question,
		SessionID: req.SessionID,
		UserID:    req.UserID,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Error("Failed to answer question", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process question",
		})
	}

	return c.JSON(response)
}

func (h *AssistantHandler) HandleHistory(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = c.Get("X-Session-ID")
	}
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	limit := c.QueryInt("limit", 10)

	records, err := h.engine.History(c.Context(), sessionID, limit)
	if err != nil {
		logger.Error("Failed to load history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	history := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		history = append(history, fiber.Map{
			"conversation_id": r.ID,
			"question":        r.Question,
			"response":        r.Response,
			"subject":         r.Subject,
			"question_type":   r.QuestionType,
			"confidence":      r.Confidence,
			"feedback_rating": r.FeedbackRating,
			"created_at":      r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"history":    history,
	})
}

func (h *AssistantHandler) HandleFeedback(c *fiber.Ctx) error {
	var req struct {
		SessionID      string `json:"session_id"`
		ConversationID int64  `json:"conversation_id"`
		Rating         int    `json:"rating"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.SessionID == "" {
		req.SessionID = c.Get("X-Session-ID")
	}
	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	err := h.engine.Feedback(c.Context(), req.SessionID, req.ConversationID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, models.ErrConversationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Conversation not found",
			})
		default:
			logger.Error("Failed to record feedback", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to record feedback",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "recorded",
	})
}

func (h *AssistantHandler) HandleSubjects(c *fiber.Ctx) error {
	summaries := h.engine.SubjectsSummary()

	subjects := make([]fiber.Map, 0, len(summaries))
	for _, s := range summaries {
		subjects = append(subjects, fiber.Map{
			"subject":      s.Subject,
			"display_name": s.Subject.DisplayName(),
			"topics":       s.Topics,
			"entry_count":  s.TopicsCount,
		})
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
	})
}

func (h *AssistantHandler) HandleAddKnowledge(c *fiber.Ctx) error {
	role := c.Get("X-User-Role")
	if !strings.EqualFold(role, "admin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin role required",
		})
	}

	var req struct {
		Subject    string   `json:"subject"`
		Topic      string   `json:"topic"`
		Content    string   `json:"content"`
		Keywords   []string `json:"keywords"`
		Difficulty string   `json:"difficulty"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := h.engine.AddEntry(c.Context(), knowledge.Entry{
		Subject:    knowledge.Subject(req.Subject),
		Topic:      req.Topic,
		Content:    req.Content,
		Keywords:   req.Keywords,
		Difficulty: knowledge.Difficulty(req.Difficulty),
	})
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Error("Failed to add knowledge entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add knowledge entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         entry.ID,
		"subject":    entry.Subject,
		"topic":      entry.Topic,
		"difficulty": entry.Difficulty,
	})
}

func (h *AssistantHandler) HandleSessionStats(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = c.Get("X-Session-ID")
	}
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	summary, ok := h.engine.SessionStats(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No activity recorded for session",
		})
	}

	return c.JSON(summary)
}
