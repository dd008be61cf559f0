package handler

import (
	"github.com/deppfellow/registry/internal/server"
	"github.com/deppfellow/registry/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Records *RecordsHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Records: NewRecordsHandler(s, services.Records),
	}
}
