package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/registry/internal/errs"
	"github.com/labstack/echo/v4"
)

type lookupRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *lookupRequest) Validate() error {
	return Struct(r)
}

type yearRequest struct {
	Year int `param:"year" validate:"required,min=1,max=9999"`
}

func (r *yearRequest) Validate() error {
	return Struct(r)
}

func newContext(name, value string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func TestBindAndValidate(t *testing.T) {
	req := &lookupRequest{}
	if err := BindAndValidate(newContext("id", "42"), req); err != nil {
		t.Fatalf("BindAndValidate() error = %v", err)
	}
	if req.ID != 42 {
		t.Fatalf("ID = %d, want 42", req.ID)
	}
}

func TestBindAndValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		value     string
		payload   Validatable
		wantField string
		wantError string
	}{
		{"zero id", "id", "0", &lookupRequest{}, "id", "is required"},
		{"negative id", "id", "-4", &lookupRequest{}, "id", "must be at least 1"},
		{"year too large", "year", "10000", &yearRequest{}, "year", "must not exceed 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(tt.param, tt.value), tt.payload)

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("BindAndValidate() = %v, want *errs.HTTPError", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Fatalf("Status = %d, want 400", httpErr.Status)
			}
			if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != tt.wantField || httpErr.Errors[0].Error != tt.wantError {
				t.Fatalf("Errors = %+v", httpErr.Errors)
			}
		})
	}
}

func TestBindAndValidate_NonNumericParam(t *testing.T) {
	err := BindAndValidate(newContext("id", "abc"), &lookupRequest{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("BindAndValidate() = %v, want 400", err)
	}
}

func TestCustomValidationErrors(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{{Field: "year", Message: "is in the future"}})
	if msg != "Validation failed" || len(fieldErrors) != 1 || fieldErrors[0].Error != "is in the future" {
		t.Fatalf("extractValidationError() = %q, %+v", msg, fieldErrors)
	}
}
