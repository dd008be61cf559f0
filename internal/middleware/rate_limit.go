package middleware

import (
	"github.com/deppfellow/registry/internal/errs"
	"github.com/deppfellow/registry/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware limits requests per client IP and reports hits.
type RateLimitMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewRateLimitMiddleware(s *server.Server, nrApp *newrelic.Application) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// Limit allows Server.RateLimit requests per second per IP. A zero rate
// disables limiting.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimit
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limit),
		Burst: max(1, int(limit)),
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("client", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError()
		},
	})
}

// RecordRateLimitHit records a New Relic custom event for a denied request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.nrApp != nil {
		r.nrApp.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
