// Package middleware holds the global and route group middleware:
// request ids, request scoped logging, New Relic tracing, Clerk
// authentication, party role resolution, rate limiting, CORS, panic
// recovery and the global error handler.
package middleware
