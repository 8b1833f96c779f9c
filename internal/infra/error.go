package infra

import (
	"errors"

	"tarumbeta-server/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a low-level store error. The kind defaults to
// DB_FAILURE unless given explicitly. DB failures mean the store, not
// the request, is sick, so they carry the upstream-unavailable mark the
// handlers answer 503 with.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	if kind == KindDBFailure {
		err = errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// ClassifyPgErr inspects a pgx error and wraps it with the matching
// kind so usecases can branch on duplicates and missing rows without
// importing pgx.
func ClassifyPgErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return WrapRepoErr(msg, err, KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return WrapRepoErr(msg, err, KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return WrapRepoErr(msg, err, KindForeignKeyViolated)
		}
	}

	return WrapRepoErr(msg, err, KindDBFailure)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
