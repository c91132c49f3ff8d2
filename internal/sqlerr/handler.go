package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/acervo-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertPgError converts a pgconn.PgError into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates a machine-friendly code for logs.
//
// Output format: <TABLE>_<ACTION>, e.g. QUESTOES_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	action := "DATABASE_ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText:
		action = "INVALID"
	case ConnectionFailure:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText converts snake_case into Title Case.
//
//	"itens_achados_perdidos" -> "Itens Achados Perdidos"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.Portuguese).String(strings.ReplaceAll(text, "_", " "))
}

// Details returns the structured fields worth logging for a database error.
// It returns nil when err carries no PostgreSQL error.
func Details(err error) map[string]any {
	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return nil
	}

	sqlErr := ConvertPgError(pgerr)
	details := map[string]any{
		"sql_state": sqlErr.DatabaseCode,
		"category":  string(sqlErr.Code),
		"severity":  string(sqlErr.Severity),
	}
	if sqlErr.TableName != "" {
		details["table"] = sqlErr.TableName
		details["entity"] = humanizeText(sqlErr.TableName)
	}
	if sqlErr.ColumnName != "" {
		details["column"] = sqlErr.ColumnName
	}
	if sqlErr.ConstraintName != "" {
		details["constraint"] = sqlErr.ConstraintName
	}

	return details
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - *pgconn.PgError: 500 carrying a log-only code such as QUESTOES_INVALID
//   - anything else: 500
//
// No database detail ever reaches the client; callers log the original error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Registro não encontrado", false, nil)
	}

	internal := errs.NewInternalServerError()

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		internal.Code = generateErrorCode(sqlErr.TableName, sqlErr.Code)
	}

	return internal
}
