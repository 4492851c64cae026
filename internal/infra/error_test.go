//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"cowork-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"check constraint", &pgconn.PgError{Code: "23514"}, infra.KindConflict},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, infra.KindConflict},
		{"other postgres error", &pgconn.PgError{Code: "42P01"}, infra.KindDBFailure},
		{"network error", errors.New("connection reset"), infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("find booking", tt.err)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: booking not found", err.Error())
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("create booking: %w", infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505"}))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.False(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindDBFailure))
	})
}
