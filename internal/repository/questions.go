package repository

import (
	"context"

	"github.com/deppfellow/acervo-api/internal/database"
	"github.com/deppfellow/acervo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	listQuestionsSQL = `SELECT id, enunciado, disciplina, tema, nivel FROM questoes`

	getQuestionSQL = `SELECT id, enunciado, disciplina, tema, nivel FROM questoes WHERE id = $1`

	createQuestionSQL = `INSERT INTO questoes (enunciado, disciplina, tema, nivel)
VALUES ($1, $2, $3, $4)
RETURNING id`

	updateQuestionSQL = `UPDATE questoes
SET enunciado = $1, disciplina = $2, tema = $3, nivel = $4
WHERE id = $5`

	deleteQuestionSQL = `DELETE FROM questoes WHERE id = $1`
)

// QuestionRepository reads and writes the questoes table.
//
// Missing rows are reported as a wrapped pgx.ErrNoRows, including updates
// and deletes that matched nothing.
type QuestionRepository struct {
	db database.Querier
}

// NewQuestionRepository returns a repository that runs its SQL on db.
// In production db is the shared *database.Database.
func NewQuestionRepository(db database.Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns every question in table order. An empty table yields an
// empty, non-nil slice.
func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, listQuestionsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Statement, &q.Subject, &q.Topic, &q.Level); err != nil {
			return nil, errors.Wrap(err, "failed to scan question")
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate questions")
	}

	return questions, nil
}

// Get returns the question with the given id, or a wrapped pgx.ErrNoRows.
func (r *QuestionRepository) Get(ctx context.Context, id int64) (*model.Question, error) {
	var q model.Question
	err := r.db.QueryRow(ctx, getQuestionSQL, id).
		Scan(&q.ID, &q.Statement, &q.Subject, &q.Topic, &q.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get question %d", id)
	}

	return &q, nil
}

// Create inserts the question and returns its generated id.
func (r *QuestionRepository) Create(ctx context.Context, q model.Question) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createQuestionSQL, q.Statement, q.Subject, q.Topic, q.Level).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create question")
	}

	return id, nil
}

// Update rewrites every column of the row identified by q.ID.
func (r *QuestionRepository) Update(ctx context.Context, q model.Question) error {
	tag, err := r.db.Exec(ctx, updateQuestionSQL, q.Statement, q.Subject, q.Topic, q.Level, q.ID)
	if err != nil {
		return errors.Wrapf(err, "failed to update question %d", q.ID)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "question %d vanished before update", q.ID)
	}

	return nil
}

// Delete removes the question. A delete that touches no row reports a
// wrapped pgx.ErrNoRows.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteQuestionSQL, id)
	if err != nil {
		return errors.Wrapf(err, "failed to delete question %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "question %d not found", id)
	}

	return nil
}
