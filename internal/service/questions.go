package service

import (
	"context"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/rs/zerolog"
)

const (
	questionNotFoundMessage = "Questão não encontrada"
	questionCreatedMessage  = "Questão criada com sucesso"
	questionUpdatedMessage  = "Questão atualizada com sucesso"
	questionDeletedMessage  = "Questão excluída com sucesso"
)

// QuestionStore is the persistence the question service needs.
// repository.QuestionRepository implements it.
type QuestionStore interface {
	List(ctx context.Context) ([]model.Question, error)
	Get(ctx context.Context, id int64) (*model.Question, error)
	Create(ctx context.Context, q model.Question) (int64, error)
	Update(ctx context.Context, q model.Question) error
	Delete(ctx context.Context, id int64) error
}

// QuestionService implements the question operations on top of a
// QuestionStore.
type QuestionService struct {
	store QuestionStore
}

// NewQuestionService returns a service that persists through store.
func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{store: store}
}

func questionNotFound() error {
	return errs.NewNotFoundError(questionNotFoundMessage, true, nil)
}

// List returns every question.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.store.List(ctx)
}

// Get returns the question identified by rawID. An id that is not an
// integer cannot match any row and is reported as not found.
func (s *QuestionService) Get(ctx context.Context, rawID string) (*model.Question, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, questionNotFound()
	}

	q, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, questionNotFound)
	}

	return q, nil
}

// Create stores the question and reports its generated id.
func (s *QuestionService) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.QuestionCreatedResponse, error) {
	id, err := s.store.Create(ctx, req.ToQuestion())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("question_id", id).Msg("question created")

	return &model.QuestionCreatedResponse{Message: questionCreatedMessage, ID: id}, nil
}

// Update merges the request onto the stored question and writes it back.
func (s *QuestionService) Update(ctx context.Context, req *model.UpdateQuestionRequest) (*model.MessageResponse, error) {
	stored, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, stored.Merge(req)); err != nil {
		return nil, notFoundOr(err, questionNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("question_id", stored.ID).Msg("question updated")

	return &model.MessageResponse{Message: questionUpdatedMessage}, nil
}

// Delete removes the question. Unknown and malformed ids are both
// reported as not found.
func (s *QuestionService) Delete(ctx context.Context, rawID string) (*model.MessageResponse, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, questionNotFound()
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, questionNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("question_id", id).Msg("question deleted")

	return &model.MessageResponse{Message: questionDeletedMessage}, nil
}
