// Package repository handles all interactions with the database.
//
// It contains the raw SQL and the row scanning for every table, so the
// service layer never sees SQL. Repositories only depend on
// database.Querier, which keeps them testable against a mocked pool.
package repository

import (
	"github.com/deppfellow/acervo-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Questions *QuestionRepository
	Items     *ItemRepository
}

// NewRepositories builds every repository on top of the shared connection accessor.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Questions: NewQuestionRepository(s.DB),
		Items:     NewItemRepository(s.DB),
	}
}
