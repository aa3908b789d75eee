package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/edu-assistant/backend/internal/assistant"
	"github.com/edu-assistant/backend/pkg/logger"
)

type WebSocketHandler struct {
	engine *assistant.Engine
}

func NewWebSocketHandler(engine *assistant.Engine) *WebSocketHandler {
	return &WebSocketHandler{
		engine: engine,
	}
}

func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type      string `json:"type"`
			Content   string `json:"content"`
			SessionID string `json:"session_id"`
			UserID    string `json:"user_id"`
		}

		err := c.ReadJSON(&msg)
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Error("Failed to read WebSocket message", zap.Error(err))
			}
			break
		}

		if msg.Type != "question" {
			continue
		}

		err = h.streamResponse(c, msg.Content, msg.SessionID, msg.UserID)
		if err != nil {
			logger.Error("Failed to stream response", zap.Error(err))
			if errors.Is(err, assistant.ErrInvalidInput) {
				h.sendError(c, err.Error())
			} else {
				h.sendError(c, "Failed to process question")
			}
		}
	}
}

func (h *WebSocketHandler) streamResponse(c *websocket.Conn, question, sessionID, userID string) error {
	ctx := context.Background()

	req := assistant.AskRequest{
		Question:  question,
		SessionID: sessionID,
		UserID:    userID,
	}

	h.sendChunk(c, "status", "Procesando tu pregunta...")

	response, err := h.engine.Ask(ctx, req)
	if err != nil {
		return err
	}

	words := splitIntoWords(response.Response)
	for i, word := range words {
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}

		err := h.sendChunk(c, "chunk", chunk)
		if err != nil {
			return err
		}
	}

	return h.sendComplete(c, response)
}

func (h *WebSocketHandler) sendChunk(c *websocket.Conn, msgType, content string) error {
	msg := map[string]interface{}{
		"type":    msgType,
		"content": content,
	}

	return c.WriteJSON(msg)
}

func (h *WebSocketHandler) sendComplete(c *websocket.Conn, response *assistant.AskResponse) error {
	msg := map[string]interface{}{
		"type":            "complete",
		"conversation_id": response.ConversationID,
		"subject":         response.Subject,
		"topic":           response.Topic,
		"question_type":   response.QuestionType,
		"confidence":      response.Confidence,
		"suggestions":     response.Suggestions,
		"resources":       response.Resources,
		"latency_ms":      response.LatencyMS,
	}

	return c.WriteJSON(msg)
}

func (h *WebSocketHandler) sendError(c *websocket.Conn, errorMsg string) {
	msg := map[string]interface{}{
		"type":  "error",
		"error": errorMsg,
	}

	c.WriteJSON(msg)
}

func splitIntoWords(text string) []string {
	words := []string{}
	currentWord := ""

	for _, char := range text {
		if char == ' ' || char == '\n' {
			if currentWord != "" {
				words = append(words, currentWord)
				currentWord = ""
			}
			if char == '\n' {
				words = append(words, "\n")
			}
		} else {
			currentWord += string(char)
		}
	}

	if currentWord != "" {
		words = append(words, currentWord)
	}

	return words
}
