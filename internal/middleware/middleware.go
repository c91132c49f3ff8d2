// Package middleware stores the global middleware and the error funnel.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, CORS, tracing and panic recovery.
package middleware
