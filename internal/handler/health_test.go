package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/registry/internal/config"
	"github.com/deppfellow/registry/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type fakePinger struct {
	err      error
	deadline bool
}

func (f *fakePinger) Ping(ctx context.Context) error {
	_, f.deadline = ctx.Deadline()
	return f.err
}

func newHealthHandler(db pinger, obs *config.ObservabilityConfig) *HealthHandler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: obs,
		},
		Logger: &logger,
	}

	h := NewHealthHandler(s)
	h.db = db
	return h
}

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	if err := h.CheckHealth(c); err != nil {
		t.Fatalf("CheckHealth() error = %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestCheckHealth_Healthy(t *testing.T) {
	db := &fakePinger{}
	code, body := checkHealth(t, newHealthHandler(db, config.DefaultObservabilityConfig()))

	if code != http.StatusOK || body["status"] != "healthy" || body["environment"] != "test" {
		t.Fatalf("got %d %v", code, body)
	}
	if !db.deadline {
		t.Fatal("ping ran without a timeout")
	}

	checks := body["checks"].(map[string]any)
	if checks["database"].(map[string]any)["status"] != "healthy" {
		t.Fatalf("checks = %v", checks)
	}
}

func TestCheckHealth_DatabaseDown(t *testing.T) {
	db := &fakePinger{err: errors.New("connection refused")}
	code, body := checkHealth(t, newHealthHandler(db, config.DefaultObservabilityConfig()))

	if code != http.StatusServiceUnavailable || body["status"] != "unhealthy" {
		t.Fatalf("got %d %v", code, body)
	}

	database := body["checks"].(map[string]any)["database"].(map[string]any)
	if database["status"] != "unhealthy" || database["error"] != "connection refused" {
		t.Fatalf("database check = %v", database)
	}
}

func TestCheckHealth_NoDatabase(t *testing.T) {
	code, _ := checkHealth(t, newHealthHandler(nil, nil))
	if code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", code)
	}
}

func TestCheckHealth_Disabled(t *testing.T) {
	disabled := false
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Enabled = &disabled

	db := &fakePinger{err: errors.New("never called")}
	code, body := checkHealth(t, newHealthHandler(db, obs))

	if code != http.StatusOK || len(body["checks"].(map[string]any)) != 0 {
		t.Fatalf("got %d %v", code, body)
	}
}

func TestHealthTimeout(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Timeout = 750 * time.Millisecond

	if got := newHealthHandler(nil, obs).timeout(); got != 750*time.Millisecond {
		t.Fatalf("timeout() = %v", got)
	}
	if got := newHealthHandler(nil, nil).timeout(); got != defaultHealthCheckTimeout {
		t.Fatalf("timeout() without config = %v", got)
	}
}
