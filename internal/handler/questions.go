package handler

import (
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/deppfellow/acervo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// QuestionHandler serves /questoes.
type QuestionHandler struct {
	Handler
	questions *service.QuestionService
}

// NewQuestionHandler returns the /questoes handler backed by questions.
func NewQuestionHandler(s *server.Server, questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		Handler:   NewHandler(s),
		questions: questions,
	}
}

// List answers every question.
func (h *QuestionHandler) List(c echo.Context, _ *model.ListQuestionsRequest) ([]model.Question, error) {
	return h.questions.List(c.Request().Context())
}

// Get answers with a one-element array holding the question.
func (h *QuestionHandler) Get(c echo.Context, req *model.QuestionIDRequest) ([]model.Question, error) {
	q, err := h.questions.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return []model.Question{*q}, nil
}

// Create stores a new question and answers 201 with its id.
func (h *QuestionHandler) Create(c echo.Context, req *model.CreateQuestionRequest) (*model.QuestionCreatedResponse, error) {
	return h.questions.Create(c.Request().Context(), req)
}

// Update applies a partial update. Omitted or empty fields keep their
// stored value.
func (h *QuestionHandler) Update(c echo.Context, req *model.UpdateQuestionRequest) (*model.MessageResponse, error) {
	return h.questions.Update(c.Request().Context(), req)
}

// Delete removes the question or answers 404.
func (h *QuestionHandler) Delete(c echo.Context, req *model.QuestionIDRequest) (*model.MessageResponse, error) {
	return h.questions.Delete(c.Request().Context(), req.ID)
}
