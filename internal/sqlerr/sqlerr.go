// Package sqlerr turns database driver errors into API errors.
//
// Constraint violations become 400s with a readable message, missing rows
// become 404s and everything else becomes an opaque 500.
package sqlerr
