// Package errs defines the error shapes the registry returns to clients.
//
// Every failure that reaches the HTTP or CLI surface is an *HTTPError, so
// callers always see the same code/message/status structure whether the
// cause was a bad path parameter, a missing director or an unreachable
// database.
package errs
