package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitplan-api/internal/planner"
)

type fakeModel struct {
	text string
	err  error
}

func (f *fakeModel) Chat(context.Context, string, string) (string, error) {
	return f.text, f.err
}

func newTestHandler(model planner.ModelClient) http.Handler {
	s := &Server{port: 8080, generator: planner.NewGenerator(model)}
	return s.RegisterRoutes()
}

const requestBody = `{
  "user_id": "user-123",
  "age": "30",
  "height": "180cm",
  "weight": "75kg",
  "injuries": "None",
  "workout_days": ["Monday", "Thursday"],
  "fitness_goal": "fat loss",
  "fitness_level": "beginner",
  "dietary_restrictions": "None"
}`

func postPlan(t *testing.T, handler http.Handler, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/fitness_generator", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return envelope
}

func TestGeneratePlanEndpoint(t *testing.T) {
	// The model fails, so the response carries fallback plans plus error notes.
	handler := newTestHandler(&fakeModel{err: errors.New("dial tcp: connection refused")})

	envelope := postPlan(t, handler, requestBody)
	if envelope["success"] != true {
		t.Fatalf("expected envelope success=true, got %#v", envelope)
	}
	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %#v", envelope["data"])
	}
	if data["success"] != false {
		t.Fatalf("expected inner success=false, got %#v", data["success"])
	}
	workout, ok := data["workout_plan"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected workout_plan object, got %#v", data["workout_plan"])
	}
	exercises, ok := workout["exercises"].([]interface{})
	if !ok || len(exercises) != 2 {
		t.Fatalf("expected fallback exercises for 2 days, got %#v", workout["exercises"])
	}
	diet, ok := data["diet_plan"].(map[string]interface{})
	if !ok || diet["dailyCalories"] != float64(2000) {
		t.Fatalf("expected 2000-calorie fallback diet, got %#v", data["diet_plan"])
	}
	errs, ok := data["errors"].([]interface{})
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 error notes, got %#v", data["errors"])
	}
}

func TestGeneratePlanMissingFieldReturnsBareError(t *testing.T) {
	handler := newTestHandler(&fakeModel{text: "{}"})

	body := `{"age": "30", "height": "180cm", "weight": "75kg", "workout_days": ["Monday"], "fitness_goal": "x", "fitness_level": "y"}`
	envelope := postPlan(t, handler, body)
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %#v", envelope)
	}
	msg, _ := envelope["error"].(string)
	if !strings.Contains(msg, "user_id") {
		t.Fatalf("expected error mentioning user_id, got %q", msg)
	}
	if _, ok := envelope["data"]; ok {
		t.Fatalf("expected no data field, got %#v", envelope["data"])
	}
}

func TestGeneratePlanMalformedBody(t *testing.T) {
	handler := newTestHandler(&fakeModel{text: "{}"})

	envelope := postPlan(t, handler, "{not json")
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %#v", envelope)
	}
}

func TestRootLivenessMarker(t *testing.T) {
	handler := newTestHandler(&fakeModel{text: "{}"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["status"] != "healthy" || body["message"] != "Fitness API is running." {
		t.Fatalf("unexpected liveness body: %#v", body)
	}
}

func TestCORSIsFullyOpen(t *testing.T) {
	handler := newTestHandler(&fakeModel{text: "{}"})

	req := httptest.NewRequest(http.MethodOptions, "/api/fitness_generator", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	handler := newTestHandler(&fakeModel{text: "{}"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
}
