// Package handler is the HTTP layer of the registry.
//
// Handlers bind and validate path parameters through the validation
// package, call the records service and write JSON. Errors are returned
// untouched for the global error handler to render.
package handler
