// Package service contains the registry's business logic.
//
// It sits between the handler and repository layers: handlers pass
// validated input, services call the repository and turn "no row" into
// a not-found error for the HTTP and CLI surfaces.
package service
