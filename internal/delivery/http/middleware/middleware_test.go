package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := log.New(buf, "", 0)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())

	app.Get("/bad", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "bad role", map[string]string{"role": "is required"}, errors.New("cause"))
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", "secret", errors.New("pool closed"))
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/fiber", func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("plain")
	})
	return app
}

func do(t *testing.T, app *fiber.App, path string, header map[string]string) (int, response.SemanticResponse, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	var out response.SemanticResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
	return resp.StatusCode, out, resp.Header.Get("X-Request-ID")
}

func TestErrorMiddleware_ClientError(t *testing.T) {
	var buf bytes.Buffer
	status, body, _ := do(t, newTestApp(&buf), "/bad", nil)

	if status != fiber.StatusBadRequest || body.Message != "bad role" {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
	data, ok := body.Data.(map[string]any)
	if !ok || data["role"] != "is required" {
		t.Fatalf("expected field data, got %#v", body.Data)
	}
}

func TestErrorMiddleware_HidesInternalDetails(t *testing.T) {
	var buf bytes.Buffer
	status, body, _ := do(t, newTestApp(&buf), "/internal", nil)

	if status != fiber.StatusInternalServerError || body.Message != response.MessageInternalServerError || body.Data != nil {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
	if !strings.Contains(buf.String(), "pool closed") {
		t.Fatalf("expected cause in logs, got %q", buf.String())
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	status, body, _ := do(t, newTestApp(&buf), "/panic", nil)

	if status != fiber.StatusInternalServerError || body.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic log, got %q", buf.String())
	}
}

func TestErrorMiddleware_FiberAndPlainErrors(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	if status, body, _ := do(t, app, "/fiber", nil); status != fiber.StatusNotFound || body.Message == "" {
		t.Fatalf("unexpected fiber error response: %d %+v", status, body)
	}
	if status, body, _ := do(t, app, "/plain", nil); status != fiber.StatusInternalServerError || body.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected plain error response: %d %+v", status, body)
	}
}

func TestAccessLog_RequestID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	_, _, rid := do(t, app, "/bad", map[string]string{"X-Request-ID": "req-123"})
	if rid != "req-123" {
		t.Fatalf("expected propagated request id, got %q", rid)
	}
	if !strings.Contains(buf.String(), "HTTP access | rid=req-123") || !strings.Contains(buf.String(), "status=400") {
		t.Fatalf("unexpected access log: %q", buf.String())
	}

	_, _, rid = do(t, app, "/bad", nil)
	if len(rid) != 36 {
		t.Fatalf("expected generated uuid request id, got %q", rid)
	}
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "app error without message", err: NewAppError(fiber.StatusNotFound, "", nil, nil), status: 404, msg: response.MessageNotFound},
		{name: "app error bad status", err: NewAppError(0, "x", nil, nil), status: 500, msg: response.MessageInternalServerError},
		{name: "service unavailable", err: fiber.ErrServiceUnavailable, status: 503, msg: response.MessageDegraded},
		{name: "wrapped app error", err: fmt.Errorf("outer: %w", NewAppError(400, "bad", nil, nil)), status: 400, msg: "bad"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			if status != tc.status || msg != tc.msg {
				t.Fatalf("got %d %q, want %d %q", status, msg, tc.status, tc.msg)
			}
		})
	}
}
