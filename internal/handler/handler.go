// Package handler is the HTTP layer.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes the JSON response. Errors are returned to
// the global error handler untouched.
package handler
