package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/registry/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that validate themselves,
// usually by calling Struct.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate can return it.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path, query and body values into payload and
// validates it. Both binding and validation failures become a 400.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError reports which parameter could not be converted, e.g. a
// director id of "abc".
func bindError(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError("Invalid request parameters", true, nil, []errs.FieldError{{
			Field: strings.ToLower(bindingErr.Field),
			Error: "has an invalid format",
		}}, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil, nil)
		}
		return errs.NewBadRequestError(http.StatusText(echoErr.Code), false, nil, nil, nil)
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil, nil)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", e.Param())
			}

		case "max":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", e.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", e.Param())

		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
