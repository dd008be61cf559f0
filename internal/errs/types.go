package errs

import (
	"net/http"
)

func newError(status int, message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewBadRequestError creates a 400 with optional custom code, field errors and action.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	err := newError(http.StatusBadRequest, message, override, code)
	err.Errors = errors
	err.Action = action
	return err
}

// NewNotFoundError creates a 404, e.g. for a director id with no row.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newError(http.StatusNotFound, message, override, code)
}

// NewInternalServerError creates a generic 500 that never leaks driver details.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}

// NewServiceUnavailableError creates a 503 with a retry hint, used when the
// database cannot be reached.
func NewServiceUnavailableError(message string) *HTTPError {
	err := newError(http.StatusServiceUnavailable, message, true, nil)
	err.Action = &Action{
		Type:    ActionTypeRetry,
		Message: "The registry database is temporarily unavailable",
	}
	return err
}

// NewTooManyRequestsError creates a 429 for rate limited clients.
func NewTooManyRequestsError() *HTTPError {
	return newError(http.StatusTooManyRequests, "Rate limit exceeded", true, nil)
}
