package order_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	db postgres.TxBeginner
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return newPgOrderRepo(pg.Pool, pg.Builder)
}

func newPgOrderRepo(db postgres.TxBeginner, builder squirrel.StatementBuilderType) *PgOrderRepo {
	return &PgOrderRepo{
		db:   db,
		repo: repo{db: db, builder: builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	return postgres.RunInTx(ctx, r.db, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

// Amounts travel as text so NUMERIC keeps its exact scale on both sides.
var orderColumns = []string{
	"o.id", "o.currency", "o.grand_total::text", "o.total_paid::text", "o.total_refunded::text",
	"o.state", "o.in_process", "o.customer_note_notify", "o.under_review", "o.created_at", "o.updated_at",
}

func (r *repo) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders o").
		Where(squirrel.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, order.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *repo) LoadOrderByPaymentIntent(ctx context.Context, intentID string) (*order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders o").
		Join("payment_intents pi ON pi.order_id = o.id").
		Where(squirrel.Eq{"pi.id": intentID}).
		Suffix("FOR UPDATE OF o").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load order by payment intent: %w", err)
	}
	return o, nil
}

func (r *repo) UpdateOrder(ctx context.Context, o order.Order) error {
	query, args, err := r.builder.Update("orders").
		Set("total_paid", o.TotalPaid.String()).
		Set("total_refunded", o.TotalRefunded.String()).
		Set("state", string(o.State)).
		Set("in_process", o.InProcess).
		Set("customer_note_notify", o.CustomerNoteNotify).
		Set("under_review", o.UnderReview).
		Set("updated_at", o.UpdatedAt).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *repo) CreateInvoice(ctx context.Context, invoice order.Invoice) error {
	query, args, err := r.builder.Insert("invoices").
		Columns("id", "order_id", "transaction_id", "amount", "capture_mode", "customer_notified", "created_at").
		Values(invoice.ID, invoice.OrderID, invoice.TransactionID, invoice.Amount.String(),
			string(invoice.CaptureMode), invoice.CustomerNotified, invoice.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert invoice query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.ErrDocumentExists
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *repo) InvoicedAmount(ctx context.Context, orderID, transactionID string) (decimal.Decimal, error) {
	query, args, err := r.builder.Select("COALESCE(SUM(amount), 0)::text").
		From("invoices").
		Where(squirrel.Eq{"order_id": orderID, "transaction_id": transactionID}).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build invoiced amount query: %w", err)
	}

	var raw string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("sum invoices: %w", err)
	}
	return parseAmount(raw)
}

func (r *repo) ListInvoices(ctx context.Context, orderID string) ([]order.Invoice, error) {
	query, args, err := r.builder.Select("id", "order_id", "transaction_id", "amount::text", "capture_mode", "customer_notified", "created_at").
		From("invoices").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list invoices query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	return parseInvoiceRows(rows)
}

func (r *repo) CreateCreditMemo(ctx context.Context, memo order.CreditMemo) error {
	query, args, err := r.builder.Insert("credit_memos").
		Columns("id", "order_id", "payment_intent_id", "refund_id", "amount", "created_at").
		Values(memo.ID, memo.OrderID, memo.PaymentIntentID, memo.RefundID, memo.Amount.String(), memo.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert credit memo query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.ErrDocumentExists
		}
		return fmt.Errorf("insert credit memo: %w", err)
	}
	return nil
}

var creditMemoColumns = []string{"id", "order_id", "payment_intent_id", "refund_id", "amount::text", "created_at"}

func (r *repo) GetCreditMemoByRefundID(ctx context.Context, refundID string) (*order.CreditMemo, error) {
	query, args, err := r.builder.Select(creditMemoColumns...).
		From("credit_memos").
		Where(squirrel.Eq{"refund_id": refundID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get credit memo query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credit memo: %w", err)
	}
	defer rows.Close()

	memos, err := parseCreditMemoRows(rows)
	if err != nil {
		return nil, err
	}
	if len(memos) == 0 {
		return nil, nil
	}
	return &memos[0], nil
}

func (r *repo) ListCreditMemos(ctx context.Context, orderID string) ([]order.CreditMemo, error) {
	query, args, err := r.builder.Select(creditMemoColumns...).
		From("credit_memos").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list credit memos query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credit memos: %w", err)
	}
	defer rows.Close()

	return parseCreditMemoRows(rows)
}

func (r *repo) CreateAuthorization(ctx context.Context, auth order.Authorization) error {
	query, args, err := r.builder.Insert("authorizations").
		Columns("id", "order_id", "payment_intent_id", "amount", "released_at", "created_at").
		Values(auth.ID, auth.OrderID, auth.PaymentIntentID, auth.Amount.String(), auth.ReleasedAt, auth.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert authorization query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.ErrDocumentExists
		}
		return fmt.Errorf("insert authorization: %w", err)
	}
	return nil
}

var authorizationColumns = []string{"id", "order_id", "payment_intent_id", "amount::text", "released_at", "created_at"}

func (r *repo) GetAuthorizationByIntent(ctx context.Context, intentID string) (*order.Authorization, error) {
	query, args, err := r.builder.Select(authorizationColumns...).
		From("authorizations").
		Where(squirrel.Eq{"payment_intent_id": intentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get authorization query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query authorization: %w", err)
	}
	defer rows.Close()

	auths, err := parseAuthorizationRows(rows)
	if err != nil {
		return nil, err
	}
	if len(auths) == 0 {
		return nil, nil
	}
	return &auths[0], nil
}

func (r *repo) ReleaseAuthorizations(ctx context.Context, orderID string, at time.Time) (int64, error) {
	query, args, err := r.builder.Update("authorizations").
		Set("released_at", at).
		Where(squirrel.Eq{"order_id": orderID, "released_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build release authorizations query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("release authorizations: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *repo) ListAuthorizations(ctx context.Context, orderID string) ([]order.Authorization, error) {
	query, args, err := r.builder.Select(authorizationColumns...).
		From("authorizations").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list authorizations query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query authorizations: %w", err)
	}
	defer rows.Close()

	return parseAuthorizationRows(rows)
}

func (r *repo) CreateNote(ctx context.Context, note order.Note) error {
	query, args, err := r.builder.Insert("order_notes").
		Columns("id", "order_id", "kind", "source_ref", "body", "created_at").
		Values(note.ID, note.OrderID, string(note.Kind), note.SourceRef, note.Body, note.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert note query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.ErrDocumentExists
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *repo) HasNote(ctx context.Context, orderID, sourceRef string) (bool, error) {
	query, args, err := r.builder.Select("COUNT(1) > 0").
		From("order_notes").
		Where(squirrel.Eq{"order_id": orderID, "source_ref": sourceRef}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build note exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check note: %w", err)
	}
	return exists, nil
}

func (r *repo) ListNotes(ctx context.Context, orderID string) ([]order.Note, error) {
	query, args, err := r.builder.Select("id", "order_id", "kind", "source_ref", "body", "created_at").
		From("order_notes").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	return parseNoteRows(rows)
}
