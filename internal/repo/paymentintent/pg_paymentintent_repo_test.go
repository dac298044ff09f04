package paymentintent_repo

import (
	"context"
	"testing"
	"time"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intentColumns = []string{"id", "order_id", "currency", "amount", "created_at"}

func newMockRepo(t *testing.T) (*PgPaymentIntentRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PgPaymentIntentRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	intent := paymentintent.PaymentIntent{
		ID:        "int_1",
		OrderID:   "ord_1",
		Currency:  "USD",
		Amount:    decimal.RequireFromString("50.00"),
		CreatedAt: createdAt,
	}

	t.Run("should insert and read back", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO payment_intents \(id,order_id,currency,amount,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(id\) DO NOTHING`).
			WithArgs("int_1", "ord_1", "USD", "50", createdAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`SELECT id, order_id, currency, amount::text, created_at FROM payment_intents WHERE id = \$1`).
			WithArgs("int_1").
			WillReturnRows(mock.NewRows(intentColumns).AddRow("int_1", "ord_1", "USD", "50.0000", createdAt))

		stored, err := repo.Register(ctx, intent)

		require.NoError(t, err)
		assert.Equal(t, "ord_1", stored.OrderID)
		assert.True(t, intent.Amount.Equal(stored.Amount))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return the existing link on conflict", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO payment_intents`).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(`FROM payment_intents WHERE id = \$1`).
			WithArgs("int_1").
			WillReturnRows(mock.NewRows(intentColumns).AddRow("int_1", "ord_other", "USD", "50", createdAt))

		stored, err := repo.Register(ctx, intent)

		require.NoError(t, err)
		assert.Equal(t, "ord_other", stored.OrderID)
	})

	t.Run("should map missing order to order.ErrNotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO payment_intents`).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "payment_intents_order_id_fkey"})

		_, err := repo.Register(ctx, intent)

		assert.ErrorIs(t, err, order.ErrNotFound)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("should return nil when absent", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM payment_intents WHERE id = \$1`).
			WithArgs("int_404").
			WillReturnRows(mock.NewRows(intentColumns))

		pi, err := repo.Get(ctx, "int_404")

		require.NoError(t, err)
		assert.Nil(t, pi)
	})

	t.Run("should wrap database errors", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM payment_intents`).
			WillReturnError(assert.AnError)

		_, err := repo.Get(ctx, "int_1")

		assert.ErrorIs(t, err, assert.AnError)
	})
}
