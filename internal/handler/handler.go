// Package handler is the HTTP layer of the API.
//
// Each handler binds and validates one request type, resolves path ids,
// calls a single service method and lets the response handler write the
// result. Errors are returned untouched to middleware.GlobalErrorHandler.
package handler
