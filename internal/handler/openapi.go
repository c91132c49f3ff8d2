package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/acervo-api/internal/handler/static"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the documentation page. The page loads its viewer
// from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler returns the handler for the documentation page.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the embedded viewer page. The page itself loads
// /static/openapi.json, which the router serves from the same files.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.FS.ReadFile("openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	// Docs change with every deploy.
	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}
