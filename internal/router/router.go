// Package router builds the echo instance: the middleware chain, the
// /api/v1 lookup routes and the system routes.
package router

import (
	"github.com/deppfellow/registry/internal/handler"
	"github.com/deppfellow/registry/internal/middleware"
	"github.com/deppfellow/registry/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired HTTP handler for s.
//
// Middleware order matters: the request id and New Relic transaction must
// exist before the context enhancer builds the request logger, and the
// rate limiter runs after it so denials are logged with request fields.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerRecordRoutes(v1, h.Records)

	return router
}

func registerRecordRoutes(g *echo.Group, h *handler.RecordsHandler) {
	g.GET("/records", h.Records())

	directors := g.Group("/directors")
	directors.GET("", h.Directors())
	directors.GET("/recent", h.RecentDirectors())
	directors.GET("/:id", h.Director())

	businesses := g.Group("/businesses")
	businesses.GET("", h.Businesses())
	businesses.GET("/directors", h.BusinessDirectors())
	businesses.GET("/registered/:year", h.BusinessesRegisteredInYear())
	businesses.GET("/:id", h.Business())
}
