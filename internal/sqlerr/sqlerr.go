// Package sqlerr translates database driver errors into client errors.
//
// The registry only reads, so the interesting failures are: the
// database cannot be reached, a fixed query no longer matches the
// schema, a parameter the driver could not coerce, and lookups that
// found nothing. Each maps to one errs.HTTPError shape.
package sqlerr

import (
	"fmt"
	"strings"
)

// Code is the registry's classification of a SQLSTATE.
type Code string

const (
	Other             Code = "other"
	ConnectionFailure Code = "connection_failure"
	MalformedQuery    Code = "malformed_query"
	InvalidParameter  Code = "invalid_parameter"
	QueryCanceled     Code = "query_canceled"
)

// Severity mirrors the severity reported by PostgreSQL.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a driver error with its SQLSTATE already classified.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// sqlStates lists the individual SQLSTATEs that do not follow their class.
var sqlStates = map[string]Code{
	"57014": QueryCanceled,     // query_canceled
	"57P01": ConnectionFailure, // admin_shutdown
	"57P02": ConnectionFailure, // crash_shutdown
	"57P03": ConnectionFailure, // cannot_connect_now
	"53300": ConnectionFailure, // too_many_connections
	"28000": ConnectionFailure, // invalid_authorization_specification
	"28P01": ConnectionFailure, // invalid_password
	"3D000": ConnectionFailure, // invalid_catalog_name
}

// MapCode classifies a five character SQLSTATE.
func MapCode(sqlState string) Code {
	if code, ok := sqlStates[sqlState]; ok {
		return code
	}
	if len(sqlState) < 2 {
		return Other
	}

	switch sqlState[:2] {
	case "08":
		return ConnectionFailure
	case "22":
		return InvalidParameter
	case "42":
		return MalformedQuery
	default:
		return Other
	}
}

// MapSeverity normalizes PostgreSQL's severity field.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}
