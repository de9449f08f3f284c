// Package errs defines the error shapes returned to API clients.
//
// Every failure that leaves a handler is converted into an *HTTPError by
// middleware.GlobalErrorHandler, so clients always receive the same JSON
// envelope with a machine friendly code and optional field-level errors.
package errs
