package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, checks map[string]Pinger) *fiber.App {
	t.Helper()
	uc := usecase.NewCareerUsecase(catalog.MustNew(catalog.Defaults()), nil, nil, time.Minute, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewHealthHandler("builtin", checks).RegisterRoutes(app)

	v1 := app.Group("/api/v1")
	NewCatalogHandler(uc).RegisterRoutes(v1)
	NewCareerHandler(uc).RegisterRoutes(v1)
	NewNewsHandler(uc).RegisterRoutes(v1)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
	return resp.StatusCode, env
}

func TestHandleEvaluate(t *testing.T) {
	app := newTestApp(t, nil)

	status, env := call(t, app, "POST", "/api/v1/career/evaluate",
		`{"target_role":"Data Engineer","skills":{"Python":3,"SQL":4,"Cloud":2},"experience_years":1}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, env.Message)
	}

	var data struct {
		Role  string `json:"role"`
		Score []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"score"`
		Gaps       []struct{ Skill string } `json:"gaps"`
		Projection []struct{ Year int }     `json:"projection"`
		Mentor     struct{ Tier string }    `json:"mentor"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Score) != 6 || data.Score[0].Name != "Salary" || data.Score[1].Value != 70 {
		t.Fatalf("unexpected score: %+v", data.Score)
	}
	if len(data.Gaps) != 3 || data.Gaps[0].Skill != "ETL" {
		t.Fatalf("unexpected gaps: %+v", data.Gaps)
	}
	if len(data.Projection) != 5 || data.Mentor.Tier != "junior" {
		t.Fatalf("unexpected projection or mentor: %+v", data)
	}
}

func TestHandleEvaluate_Errors(t *testing.T) {
	app := newTestApp(t, nil)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "unknown role", body: `{"target_role":"Astronaut","skills":{}}`, status: fiber.StatusNotFound},
		{name: "level out of range", body: `{"target_role":"Data Engineer","skills":{"Python":9}}`, status: fiber.StatusBadRequest},
		{name: "missing role", body: `{"skills":{"Python":3}}`, status: fiber.StatusBadRequest},
		{name: "malformed json", body: `{"target_role":`, status: fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := call(t, app, "POST", "/api/v1/career/evaluate", tc.body)
			if status != tc.status || env.Status != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, status, env.Message)
			}
		})
	}
}

func TestHandleEvaluate_ValidationFields(t *testing.T) {
	app := newTestApp(t, nil)

	_, env := call(t, app, "POST", "/api/v1/career/evaluate", `{"target_role":"Data Engineer","skills":{"Python":9}}`)
	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if fields["skills[Python]"] == "" {
		t.Fatalf("expected skills[Python] field error, got %v", fields)
	}
}

func TestHandleProjection(t *testing.T) {
	app := newTestApp(t, nil)

	status, env := call(t, app, "GET", "/api/v1/roles/Data%20Engineer/projection?years=3", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, env.Message)
	}
	var data struct {
		Points []struct {
			Year      int     `json:"year"`
			Potential float64 `json:"potential"`
		} `json:"points"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Points) != 3 || data.Points[0].Potential != 92.5 || data.Points[2].Potential != 100 {
		t.Fatalf("unexpected points: %+v", data.Points)
	}

	for path, want := range map[string]int{
		"/api/v1/roles/Astronaut/projection":               fiber.StatusNotFound,
		"/api/v1/roles/Data%20Engineer/projection?years=0": fiber.StatusBadRequest,
		"/api/v1/roles/Data%20Engineer/projection?years=x": fiber.StatusBadRequest,
	} {
		if status, _ := call(t, app, "GET", path, ""); status != want {
			t.Fatalf("%s: expected %d, got %d", path, want, status)
		}
	}
}

func TestHandleRoadmap(t *testing.T) {
	app := newTestApp(t, nil)

	status, env := call(t, app, "GET", "/api/v1/roles/Cloud%20Architect/roadmap?timeline=12&focus=Technical%20Skills,Certifications", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, env.Message)
	}
	var data struct {
		KnownRole        bool   `json:"known_role"`
		ExtendedTimeline bool   `json:"extended_timeline"`
		Note             string `json:"note"`
		Milestones       []struct {
			Name string `json:"name"`
		} `json:"milestones"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.KnownRole || !data.ExtendedTimeline || data.Note == "" || len(data.Milestones) != 4 {
		t.Fatalf("unexpected roadmap: %+v", data)
	}
	if data.Milestones[3].Name != "Final Milestone" {
		t.Fatalf("expected certification milestone last, got %+v", data.Milestones)
	}
}

func TestHandleRoadmap_UnknownRoleIsEmpty(t *testing.T) {
	app := newTestApp(t, nil)

	status, env := call(t, app, "GET", "/api/v1/roles/Astronaut/roadmap?timeline=6", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var data struct {
		KnownRole  bool              `json:"known_role"`
		Milestones []json.RawMessage `json:"milestones"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.KnownRole || data.Milestones == nil || len(data.Milestones) != 0 {
		t.Fatalf("expected empty milestone list, got %+v", data)
	}

	if status, _ := call(t, app, "GET", "/api/v1/roles/Astronaut/roadmap?focus=Juggling", ""); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown focus, got %d", status)
	}
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	cases := map[string]int{
		"/api/v1/roles":                              fiber.StatusOK,
		"/api/v1/roles/AI%20Specialist/requirements": fiber.StatusOK,
		"/api/v1/roles/Astronaut/requirements":       fiber.StatusNotFound,
		"/api/v1/roles/DevOps%20Engineer/interview":  fiber.StatusOK,
		"/api/v1/roles/Astronaut/interview":          fiber.StatusNotFound,
		"/api/v1/market":                             fiber.StatusOK,
		"/api/v1/network":                            fiber.StatusOK,
		"/api/v1/news?limit=2":                       fiber.StatusOK,
		"/api/v1/news?limit=0":                       fiber.StatusBadRequest,
	}
	for path, want := range cases {
		if status, env := call(t, app, "GET", path, ""); status != want {
			t.Fatalf("%s: expected %d, got %d (%s)", path, want, status, env.Message)
		}
	}

	_, env := call(t, app, "GET", "/api/v1/roles", "")
	var roles []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &roles); err != nil || len(roles) != 8 {
		t.Fatalf("expected 8 roles, got %d (%v)", len(roles), err)
	}
}

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandleHealth(t *testing.T) {
	ok := newTestApp(t, map[string]Pinger{"postgres": pingerFunc(func(context.Context) error { return nil })})
	if status, env := call(t, ok, "GET", "/health", ""); status != fiber.StatusOK || !strings.Contains(string(env.Data), `"postgres":"ok"`) {
		t.Fatalf("expected healthy, got %d %s", status, string(env.Data))
	}

	down := newTestApp(t, map[string]Pinger{"redis": pingerFunc(func(context.Context) error { return errors.New("down") })})
	if status, _ := call(t, down, "GET", "/health", ""); status != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
}
