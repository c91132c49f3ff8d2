package middleware

import (
	"github.com/deppfellow/acervo-api/internal/server"
)

// Middlewares groups every middleware component used by the router.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer stores a request-scoped logger on every request.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic transactions into Echo. It degrades into a
	// no-op when the agent is disabled.
	Tracing *TracingMiddleware
}

// NewMiddlewares builds every middleware component from s. The tracing
// middleware degrades to a pass-through when New Relic is disabled.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
	}
}
