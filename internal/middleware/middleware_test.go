package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/registry/internal/config"
	"github.com/deppfellow/registry/internal/errs"
	"github.com/deppfellow/registry/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: "http://localhost:3000"},
		},
		Logger: &logger,
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	}, RequestID())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("generated id %q, header %q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("incoming id not reused: %q", seen)
	}
}

func TestEnhanceContext_LoggerReachesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)

	e := echo.New()
	e.GET("/directors/:id", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusOK)
	}, RequestID(), NewContextEnhancer(s).EnhanceContext())

	req := httptest.NewRequest(http.MethodGet, "/directors/7", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-1" || entry["path"] != "/directors/:id" {
		t.Fatalf("unexpected log entry %v", entry)
	}
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if GetLogger(c) == nil {
		t.Fatal("GetLogger() returned nil")
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		method     string
		wantStatus int
		wantCode   string
	}{
		{"http error", errs.NewNotFoundError("Director not found", true, nil), http.MethodGet, http.StatusNotFound, "NOT_FOUND"},
		{"unknown route", echo.ErrNotFound, http.MethodGet, http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.MethodGet, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"database down", &pgconn.PgError{Code: "08006"}, http.MethodGet, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"plain error", errors.New("boom"), http.MethodGet, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"head request", errs.NewTooManyRequestsError(), http.MethodHead, http.StatusTooManyRequests, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			global := NewGlobalMiddlewares(newTestServer(&buf))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode == "" {
				if rec.Body.Len() != 0 {
					t.Fatalf("HEAD response has body %q", rec.Body.String())
				}
				return
			}

			var body errs.HTTPError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
			}
			if body.Code != tt.wantCode || body.Status != tt.wantStatus {
				t.Fatalf("body = %+v", body)
			}
			if strings.Contains(rec.Body.String(), "boom") || strings.Contains(rec.Body.String(), "08006") {
				t.Fatalf("driver details leaked: %s", rec.Body.String())
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewNotFoundError("x", false, nil), http.StatusNotFound},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{&pgconn.PgError{Code: "08006"}, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFromError(tt.err); got != tt.want {
			t.Errorf("statusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)
	s.Config.Server.RateLimit = 1

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimitMiddleware(s, nil).Limit())

	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("status codes = %v, want [200 429]", codes)
	}
}
