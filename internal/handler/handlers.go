package handler

import (
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/deppfellow/acervo-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Questions *QuestionHandler
	Items     *ItemHandler
}

// NewHandlers builds every handler over the same server and services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Questions: NewQuestionHandler(s, services.Questions),
		Items:     NewItemHandler(s, services.Items),
	}
}
