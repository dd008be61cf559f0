package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/registry/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertPgError classifies a raw PostgreSQL error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <DOMAIN>_<ACTION>, e.g. directors + not found
// gives DIRECTOR_NOT_FOUND.
func generateErrorCode(tableName, action string) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))
	return fmt.Sprintf("%s_%s", domain, action)
}

// singular drops a trailing "es"/"s": businesses -> business, directors -> director.
func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "sses") && len(name) > 4:
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}

// EntityName turns a table name into the noun used in client messages.
func EntityName(tableName string) string {
	if tableName == "" {
		return "Record"
	}
	return humanizeText(singular(tableName))
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// NotFound is the error returned when a lookup in tableName matched no row.
func NotFound(tableName string) *errs.HTTPError {
	code := generateErrorCode(tableName, "NOT_FOUND")
	return errs.NewNotFoundError(fmt.Sprintf("%s not found", EntityName(tableName)), true, &code)
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - unreachable database (connect errors, class 08, timeouts): 503
//   - parameters the driver could not coerce (class 22): 400
//   - ErrNoRows: 404
//   - anything else, including malformed queries: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case ConnectionFailure:
			return errs.NewServiceUnavailableError("Database is unavailable")

		case QueryCanceled:
			return errs.NewServiceUnavailableError("Database query was canceled")

		case InvalidParameter:
			code := generateErrorCode(sqlErr.TableName, "INVALID")
			field := strings.ToLower(sqlErr.ColumnName)
			if field == "" {
				field = "parameter"
			}
			return errs.NewBadRequestError(
				fmt.Sprintf("The %s value is invalid", humanizeText(field)),
				true,
				&code,
				[]errs.FieldError{{Field: field, Error: "is invalid"}},
				nil,
			)

		default:
			return errs.NewInternalServerError()
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.NewServiceUnavailableError("Database is unavailable")
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return errs.NewServiceUnavailableError("Database query timed out")

	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
