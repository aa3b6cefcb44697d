// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for request fields or HTTPError for API responses)
// so the client receives meaningful, actionable, and consistent
// error messages.
package errs
