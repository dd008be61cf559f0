package errs

import "strings"

// FieldError is a single invalid input, e.g. a non-numeric director id.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType names an optional follow-up the client should take.
type ActionType string

const (
	// ActionTypeRetry asks the client to retry later, used when the
	// database is unreachable.
	ActionTypeRetry ActionType = "retry"
)

// Action is an optional client instruction attached to an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type returned by the service and handler layers.
//
// It is serialized as-is by the global error handler. Override marks
// messages that are safe to show to end users verbatim.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError regardless of code, so errors.Is(err, &HTTPError{})
// answers "was this already translated for the client".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
