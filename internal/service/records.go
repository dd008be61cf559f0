package service

import (
	"context"

	"github.com/deppfellow/registry/internal/repository"
	"github.com/deppfellow/registry/internal/server"
	"github.com/deppfellow/registry/internal/sqlerr"
	"github.com/rs/zerolog"
)

// RecordsService exposes the registry lookups to handlers and the CLI.
type RecordsService struct {
	server *server.Server
	repo   *repository.RecordsRepository
}

func NewRecordsService(s *server.Server, repo *repository.RecordsRepository) *RecordsService {
	return &RecordsService{
		server: s,
		repo:   repo,
	}
}

// logger prefers the request-scoped logger stored in ctx by the context
// enhancer middleware.
func (s *RecordsService) logger(ctx context.Context, operation string) zerolog.Logger {
	base := zerolog.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled && s.server.Logger != nil {
		base = s.server.Logger
	}
	return base.With().Str("operation", operation).Logger()
}

// Records returns the joined director/business records as a JSON array.
func (s *RecordsService) Records(ctx context.Context) ([]byte, error) {
	out, err := s.repo.GetRecords(ctx)
	if err != nil {
		return nil, err
	}

	log := s.logger(ctx, "records")
	log.Debug().Int("bytes", len(out)).Msg("encoded director business records")
	return out, nil
}

func (s *RecordsService) Directors(ctx context.Context) ([]repository.Director, error) {
	directors, err := s.repo.GetDirectorRecords(ctx)
	if err != nil {
		return nil, err
	}

	log := s.logger(ctx, "directors")
	log.Debug().Int("count", len(directors)).Msg("listed directors")
	return directors, nil
}

// Director returns the director with id or a DIRECTOR_NOT_FOUND error.
func (s *RecordsService) Director(ctx context.Context, id int64) (*repository.Director, error) {
	director, err := s.repo.GetSingleDirectorRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if director == nil {
		log := s.logger(ctx, "director")
		log.Info().Int64("director_id", id).Msg("director not found")
		return nil, sqlerr.NotFound("directors")
	}
	return director, nil
}

func (s *RecordsService) Businesses(ctx context.Context) ([]repository.Business, error) {
	businesses, err := s.repo.GetBusinessRecords(ctx)
	if err != nil {
		return nil, err
	}

	log := s.logger(ctx, "businesses")
	log.Debug().Int("count", len(businesses)).Msg("listed businesses")
	return businesses, nil
}

// Business returns the business with id or a BUSINESS_NOT_FOUND error.
func (s *RecordsService) Business(ctx context.Context, id int64) (*repository.Business, error) {
	business, err := s.repo.GetSingleBusinessRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		log := s.logger(ctx, "business")
		log.Info().Int64("business_id", id).Msg("business not found")
		return nil, sqlerr.NotFound("businesses")
	}
	return business, nil
}

func (s *RecordsService) BusinessesRegisteredInYear(ctx context.Context, year int) ([]repository.Business, error) {
	businesses, err := s.repo.GetBusinessesRegisteredInYear(ctx, year)
	if err != nil {
		return nil, err
	}

	log := s.logger(ctx, "businesses_in_year")
	log.Debug().Int("year", year).Int("count", len(businesses)).Msg("listed businesses registered in year")
	return businesses, nil
}

func (s *RecordsService) RecentDirectors(ctx context.Context) ([]repository.Director, error) {
	return s.repo.GetLast100Records(ctx)
}

func (s *RecordsService) BusinessDirectors(ctx context.Context) ([]repository.BusinessDirector, error) {
	return s.repo.GetBusinessNameWithDirectorFullName(ctx)
}
