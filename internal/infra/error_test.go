//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to DB failure and carries the upstream mark", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to scan row", errors.New("connection reset"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("explicit DB failure without a cause still carries the mark", func(t *testing.T) {
		err := infra.WrapRepoErr("pool exhausted", nil, infra.KindDBFailure)

		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("request-level kinds are not upstream failures", func(t *testing.T) {
		for _, kind := range []infra.RepositoryErrorKind{
			infra.KindNotFound,
			infra.KindConflict,
			infra.KindDuplicateKey,
			infra.KindForeignKeyViolated,
		} {
			err := infra.WrapRepoErr("row rejected", errors.New("boom"), kind)

			assert.True(t, infra.IsKind(err, kind))
			assert.NotErrorIs(t, err, errs.ErrUpstreamUnavailable)
		}
	})
}

func TestClassifyPgErr(t *testing.T) {
	t.Run("no rows maps to not found", func(t *testing.T) {
		err := infra.ClassifyPgErr("lesson not found", pgx.ErrNoRows)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.NotErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("unique violation maps to duplicate key", func(t *testing.T) {
		err := infra.ClassifyPgErr("profile exists", &pgconn.PgError{Code: "23505"})

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("anything else is a DB failure with the upstream mark", func(t *testing.T) {
		err := infra.ClassifyPgErr("query failed", errors.New("broken pipe"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})
}
