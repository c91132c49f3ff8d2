package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHandleErrorNoRowsIsNotFound(t *testing.T) {
	err := HandleError(fmt.Errorf("get: %w", pgx.ErrNoRows))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Status)
	}
}

func TestHandleErrorPgErrorIsGeneric500(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		Message:    `null value in column "nome_item" violates not-null constraint`,
		TableName:  "itens_achados_perdidos",
		ColumnName: "nome_item",
	}

	err := HandleError(fmt.Errorf("create item: %w", pgErr))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Status)
	}
	if httpErr.Message != errs.InternalServerErrorMessage {
		t.Errorf("driver detail leaked into message: %q", httpErr.Message)
	}
	if httpErr.Code != "ITENS_ACHADOS_PERDIDOS_REQUIRED" {
		t.Errorf("unexpected log code %q", httpErr.Code)
	}
}

func TestHandleErrorKeepsHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Item não encontrado", true, nil)

	if got := HandleError(original); got != error(original) {
		t.Errorf("expected the same error back, got %v", got)
	}
}

func TestHandleErrorUnknownIs500(t *testing.T) {
	err := HandleError(errors.New("dial tcp: connection refused"))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}

func TestMapCode(t *testing.T) {
	cases := map[string]Code{
		"23505": UniqueViolation,
		"23503": ForeignKeyViolation,
		"22P02": InvalidText,
		"08006": ConnectionFailure,
		"XX000": Other,
	}
	for state, want := range cases {
		if got := MapCode(state); got != want {
			t.Errorf("MapCode(%q) = %s, want %s", state, got, want)
		}
	}
}

func TestDetails(t *testing.T) {
	if Details(errors.New("plain")) != nil {
		t.Error("expected nil details for non-database errors")
	}

	details := Details(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "questoes",
		ConstraintName: "questoes_pkey",
	})
	if details["category"] != string(UniqueViolation) {
		t.Errorf("unexpected category %v", details["category"])
	}
	if details["entity"] != "Questoes" {
		t.Errorf("unexpected entity %v", details["entity"])
	}
	if details["constraint"] != "questoes_pkey" {
		t.Errorf("unexpected constraint %v", details["constraint"])
	}
}
