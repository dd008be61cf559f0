package handler

import (
	"net/http"

	"github.com/deppfellow/registry/internal/repository"
	"github.com/deppfellow/registry/internal/server"
	"github.com/deppfellow/registry/internal/service"
	"github.com/deppfellow/registry/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListRequest is the payload of the list endpoints, which take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// GetByIDRequest carries the :id path parameter of single lookups.
type GetByIDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *GetByIDRequest) Validate() error {
	return validation.Struct(r)
}

// RegisteredInYearRequest carries the :year path parameter.
type RegisteredInYearRequest struct {
	Year int `param:"year" validate:"required,min=1,max=9999"`
}

func (r *RegisteredInYearRequest) Validate() error {
	return validation.Struct(r)
}

func newListRequest() *ListRequest { return &ListRequest{} }

func newGetByIDRequest() *GetByIDRequest { return &GetByIDRequest{} }

func newRegisteredInYearRequest() *RegisteredInYearRequest { return &RegisteredInYearRequest{} }

// RecordsHandler serves the director and business lookups.
type RecordsHandler struct {
	Handler
	records *service.RecordsService
}

func NewRecordsHandler(s *server.Server, records *service.RecordsService) *RecordsHandler {
	return &RecordsHandler{
		Handler: NewHandler(s),
		records: records,
	}
}

// Records serves the joined director/business records as the JSON array the
// service already encoded.
func (h *RecordsHandler) Records() echo.HandlerFunc {
	return HandleJSONBlob(h.Handler, func(c echo.Context, _ *ListRequest) ([]byte, error) {
		return h.records.Records(c.Request().Context())
	}, http.StatusOK, newListRequest)
}

func (h *RecordsHandler) Directors() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]repository.Director, error) {
		return h.records.Directors(c.Request().Context())
	}, http.StatusOK, newListRequest)
}

// RecentDirectors serves the 100 directors with the highest ids.
func (h *RecordsHandler) RecentDirectors() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]repository.Director, error) {
		return h.records.RecentDirectors(c.Request().Context())
	}, http.StatusOK, newListRequest)
}

func (h *RecordsHandler) Director() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetByIDRequest) (*repository.Director, error) {
		return h.records.Director(c.Request().Context(), req.ID)
	}, http.StatusOK, newGetByIDRequest)
}

func (h *RecordsHandler) Businesses() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]repository.Business, error) {
		return h.records.Businesses(c.Request().Context())
	}, http.StatusOK, newListRequest)
}

func (h *RecordsHandler) Business() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetByIDRequest) (*repository.Business, error) {
		return h.records.Business(c.Request().Context(), req.ID)
	}, http.StatusOK, newGetByIDRequest)
}

func (h *RecordsHandler) BusinessesRegisteredInYear() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *RegisteredInYearRequest) ([]repository.Business, error) {
		return h.records.BusinessesRegisteredInYear(c.Request().Context(), req.Year)
	}, http.StatusOK, newRegisteredInYearRequest)
}

// BusinessDirectors serves every business with its director's full name,
// null for businesses without one.
func (h *RecordsHandler) BusinessDirectors() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]repository.BusinessDirector, error) {
		return h.records.BusinessDirectors(c.Request().Context())
	}, http.StatusOK, newListRequest)
}
