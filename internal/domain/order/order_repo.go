package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source order_repo.go -destination mock_order_repo.go -package order

type OrderRepo interface {
	TxOrderRepo
	InTransaction(ctx context.Context, fn func(repo TxOrderRepo) error) error
}

type TxOrderRepo interface {
	GetOrder(ctx context.Context, id string) (*Order, error)
	// LoadOrderByPaymentIntent returns nil, nil when no order is linked to the intent.
	// Inside a transaction the order row stays locked until commit.
	LoadOrderByPaymentIntent(ctx context.Context, intentID string) (*Order, error)
	UpdateOrder(ctx context.Context, o Order) error

	CreateInvoice(ctx context.Context, invoice Invoice) error
	InvoicedAmount(ctx context.Context, orderID, transactionID string) (decimal.Decimal, error)
	ListInvoices(ctx context.Context, orderID string) ([]Invoice, error)

	CreateCreditMemo(ctx context.Context, memo CreditMemo) error
	GetCreditMemoByRefundID(ctx context.Context, refundID string) (*CreditMemo, error)
	ListCreditMemos(ctx context.Context, orderID string) ([]CreditMemo, error)

	CreateAuthorization(ctx context.Context, auth Authorization) error
	GetAuthorizationByIntent(ctx context.Context, intentID string) (*Authorization, error)
	ReleaseAuthorizations(ctx context.Context, orderID string, at time.Time) (int64, error)
	ListAuthorizations(ctx context.Context, orderID string) ([]Authorization, error)

	CreateNote(ctx context.Context, note Note) error
	HasNote(ctx context.Context, orderID, sourceRef string) (bool, error)
	ListNotes(ctx context.Context, orderID string) ([]Note, error)
}
