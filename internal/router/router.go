// Package router builds the Echo instance.
//
// It installs the middleware chain and the global error handler, then
// registers the system, question and item routes.
package router

import (
	"net/http"

	"github.com/deppfellow/acervo-api/internal/handler"
	"github.com/deppfellow/acervo-api/internal/middleware"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns a fully wired Echo instance.
//
// Middleware order matters: the request id must exist before the tracing
// and logging middleware read it, and the New Relic transaction must exist
// before the request logger is built so it carries the trace ids.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerQuestionRoutes(router, h)
	registerItemRoutes(router, h)

	return router
}

func registerQuestionRoutes(r *echo.Echo, h *handler.Handlers) {
	questions := r.Group("/questoes")
	base := h.Questions.Handler

	questions.GET("", handler.Handle(base, h.Questions.List, http.StatusOK, &model.ListQuestionsRequest{}))
	questions.GET("/:id", handler.Handle(base, h.Questions.Get, http.StatusOK, &model.QuestionIDRequest{}))
	questions.POST("", handler.Handle(base, h.Questions.Create, http.StatusCreated, &model.CreateQuestionRequest{}))
	questions.PUT("/:id", handler.Handle(base, h.Questions.Update, http.StatusOK, &model.UpdateQuestionRequest{}))
	questions.DELETE("/:id", handler.Handle(base, h.Questions.Delete, http.StatusOK, &model.QuestionIDRequest{}))
}

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/itens")
	base := h.Items.Handler

	items.GET("", handler.Handle(base, h.Items.List, http.StatusOK, &model.ListItemsRequest{}))
	items.GET("/:id", handler.Handle(base, h.Items.Get, http.StatusOK, &model.ItemIDRequest{}))
	items.POST("", handler.Handle(base, h.Items.Create, http.StatusCreated, &model.CreateItemRequest{}))
	items.PUT("/:id", handler.Handle(base, h.Items.Update, http.StatusOK, &model.UpdateItemRequest{}))
	items.DELETE("/:id", handler.Handle(base, h.Items.Delete, http.StatusOK, &model.ItemIDRequest{}))
}
