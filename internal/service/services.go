package service

import (
	"github.com/deppfellow/registry/internal/repository"
	"github.com/deppfellow/registry/internal/server"
)

// Services groups every service so handlers receive one value.
type Services struct {
	Records *RecordsService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Records: NewRecordsService(s, repos.Records),
	}
}
