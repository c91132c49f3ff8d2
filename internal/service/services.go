// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// requests from the handlers, applies the merge and not-found rules, and
// calls the repositories to touch the database.
package service

import (
	"errors"
	"strconv"

	"github.com/deppfellow/acervo-api/internal/repository"
	"github.com/jackc/pgx/v5"
)

// Services groups the domain services handed to the handlers.
type Services struct {
	Questions *QuestionService
	Items     *ItemService
}

// NewService builds every service on top of the repositories.
func NewService(repos *repository.Repositories) *Services {
	return &Services{
		Questions: NewQuestionService(repos.Questions),
		Items:     NewItemService(repos.Items),
	}
}

// parseID reads a path id. Anything that is not a base-10 integer is
// rejected.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// notFoundOr swaps a missing-row error for the entity's not-found error and
// passes every other error through.
func notFoundOr(err error, notFound func() error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound()
	}
	return err
}
