package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func decode(t *testing.T, app *fiber.App, path string) (int, SemanticResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	var out SemanticResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
	return resp.StatusCode, out
}

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "", []int{1}) })
	app.Get("/missing", func(c fiber.Ctx) error { return Error(c, fiber.StatusNotFound, "", nil) })
	app.Get("/weird", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })

	status, body := decode(t, app, "/ok")
	if status != 200 || body.Status != 200 || body.Message != MessageOK {
		t.Fatalf("unexpected ok envelope: %d %+v", status, body)
	}

	status, body = decode(t, app, "/missing")
	if status != 404 || body.Message != MessageNotFound || body.Data != nil {
		t.Fatalf("unexpected not found envelope: %d %+v", status, body)
	}

	status, body = decode(t, app, "/weird")
	if status != 500 || body.Message != MessageInternalServerError {
		t.Fatalf("unexpected normalized envelope: %d %+v", status, body)
	}
}

func TestDefaultMessage(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:         MessageBadRequest,
		fiber.StatusServiceUnavailable: MessageDegraded,
		fiber.StatusBadGateway:         MessageInternalServerError,
		fiber.StatusTeapot:             MessageError,
	}
	for status, want := range cases {
		if got := DefaultMessage(status); got != want {
			t.Fatalf("DefaultMessage(%d) = %q, want %q", status, got, want)
		}
	}
}
