package paymentintent_repo

import (
	"context"
	"errors"
	"fmt"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"
	"AirwallexPayments/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgPaymentIntentRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgPaymentIntentRepo(pg *postgres.Postgres) *PgPaymentIntentRepo {
	return &PgPaymentIntentRepo{db: pg.Pool, builder: pg.Builder}
}

// Register keeps the first row written for an intent ID; the caller compares
// the returned order reference to detect a conflicting link.
func (r *PgPaymentIntentRepo) Register(ctx context.Context, intent paymentintent.PaymentIntent) (paymentintent.PaymentIntent, error) {
	query, args, err := r.builder.Insert("payment_intents").
		Columns("id", "order_id", "currency", "amount", "created_at").
		Values(intent.ID, intent.OrderID, intent.Currency, intent.Amount.String(), intent.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return paymentintent.PaymentIntent{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorForeignKeyViolation(err) {
			return paymentintent.PaymentIntent{}, order.ErrNotFound
		}
		return paymentintent.PaymentIntent{}, fmt.Errorf("insert payment intent: %w", err)
	}

	stored, err := r.Get(ctx, intent.ID)
	if err != nil {
		return paymentintent.PaymentIntent{}, err
	}
	if stored == nil {
		return paymentintent.PaymentIntent{}, paymentintent.ErrNotFound
	}
	return *stored, nil
}

func (r *PgPaymentIntentRepo) Get(ctx context.Context, id string) (*paymentintent.PaymentIntent, error) {
	query, args, err := r.builder.Select("id", "order_id", "currency", "amount::text", "created_at").
		From("payment_intents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var pi paymentintent.PaymentIntent
	var amount string
	err = r.db.QueryRow(ctx, query, args...).Scan(&pi.ID, &pi.OrderID, &pi.Currency, &amount, &pi.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}

	if pi.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid amount in database: %w", err)
	}
	return &pi, nil
}
