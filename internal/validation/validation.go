// Package validation binds incoming requests and reports invalid fields.
//
// Field errors carry the JSON path of the offending value
// ("depositType.id"), matching the keys the client sent.
package validation
