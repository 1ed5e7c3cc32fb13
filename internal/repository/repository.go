// Package repository provides data access interfaces and their PostgreSQL
// implementations for topics, users, articles and comments.
//
// # Error Handling
//
// Methods return errors from the domain package so callers can classify them
// with errors.Is and errors.As:
//
//   - domain.ErrNotFound: the row does not exist, or a write referenced a missing user, topic or article
//   - domain.ErrInvalidInput: rejected query parameters or malformed values
//   - domain.ErrAlreadyExists: unique constraint violation
//
// Anything else is an unexpected store failure wrapped with fmt.Errorf.
//
// # Usage
//
//	db, _ := database.New(ctx, &cfg.Database, logger)
//	articles := repository.NewPgArticleRepository(db)
//	list, err := articles.List(ctx, filter, page)
package repository

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/newsroom/news-api/internal/database"
	"github.com/newsroom/news-api/internal/domain"
)

// DBTX is the database interface supporting both pool and transaction contexts.
type DBTX = database.DBTX

// PostgreSQL error codes.
const (
	pgForeignKeyViolation    = "23503"
	pgUniqueViolation        = "23505"
	pgNotNullViolation       = "23502"
	pgCheckViolation         = "23514"
	pgInvalidTextRepr        = "22P02"
	pgNumericValueOutOfRange = "22003"
)

// fkDetailPattern extracts column and value from a foreign key violation detail such as
// `Key (author)=(nobody) is not present in table "users".`
var fkDetailPattern = regexp.MustCompile(`Key \(([^)]+)\)=\((.*)\) is not present`)

// translateError maps store errors to domain errors. entity and id describe the row
// being read or written and are used for not-found and duplicate messages.
func translateError(err error, op, entity, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	switch pgErr.Code {
	case pgForeignKeyViolation:
		column, value := parseForeignKeyDetail(pgErr.Detail)
		return domain.NewConstraintViolationError(column, value)
	case pgUniqueViolation:
		return domain.NewAlreadyExistsError(entity, id)
	case pgNotNullViolation:
		return domain.NewValidationError(pgErr.ColumnName, domain.MsgMissingProperties)
	case pgInvalidTextRepr:
		return domain.NewValidationError("", domain.MsgInvalidID)
	case pgCheckViolation:
		return domain.NewValidationError(pgErr.ConstraintName, domain.MsgInvalidInput)
	case pgNumericValueOutOfRange:
		return domain.NewValidationError("votes", domain.MsgInvalidVotes)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

// parseForeignKeyDetail returns the column and value named in a foreign key
// violation detail, or empty strings when the detail has an unexpected shape.
func parseForeignKeyDetail(detail string) (column, value string) {
	m := fkDetailPattern.FindStringSubmatch(detail)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
