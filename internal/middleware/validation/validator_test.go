package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware(Config{MaxQuestionLength: 500, Logger: zap.NewNop()}))
	app.Post("/api/v1/ask", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/api/v1/feedback", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestMiddlewareAcceptsValidAsk(t *testing.T) {
	app := newTestApp()

	status, err := postJSON(app, "/api/v1/ask", `{"question": "que es la celula"}`)
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}

func TestMiddlewareRejectsBadAskBodies(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing question", `{"session_id": "s"}`},
		{"blank question", `{"question": "   "}`},
		{"non-string question", `{"question": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := postJSON(app, "/api/v1/ask", tt.body)
			if err != nil {
				t.Fatal(err)
			}
			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestMiddlewareRejectsOversizedQuestion(t *testing.T) {
	app := newTestApp()

	long := strings.Repeat("a", 2001)
	status, err := postJSON(app, "/api/v1/ask", `{"question": "`+long+`"}`)
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestMiddlewareRejectsUnsupportedContentType(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/ask", strings.NewReader("question=hola"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", resp.StatusCode)
	}
}

func TestMiddlewareIgnoresOtherRoutes(t *testing.T) {
	app := newTestApp()

	status, err := postJSON(app, "/api/v1/feedback", `{"rating": 5}`)
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}
