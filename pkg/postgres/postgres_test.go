package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	t.Run("should commit when fn succeeds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET in_process = true`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := RunInTx(ctx, mock, func(tx Executor) error {
			_, err := tx.Exec(ctx, "UPDATE orders SET in_process = true")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should rollback and return fn error unchanged", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("handler failed")
		err := RunInTx(ctx, mock, func(tx Executor) error {
			return fnErr
		})

		assert.Same(t, fnErr, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should wrap begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(assert.AnError)

		err := RunInTx(ctx, mock, func(tx Executor) error {
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "begin transaction")
	})

	t.Run("should wrap commit error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(assert.AnError)

		err := RunInTx(ctx, mock, func(tx Executor) error {
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit transaction")
	})
}

func TestIsPgErrorUniqueViolation(t *testing.T) {
	assert.True(t, IsPgErrorUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsPgErrorUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsPgErrorUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsPgErrorUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsPgErrorUniqueViolation(nil))
}

func TestIsPgErrorForeignKeyViolation(t *testing.T) {
	assert.True(t, IsPgErrorForeignKeyViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, IsPgErrorForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsPgErrorForeignKeyViolation(nil))
}
