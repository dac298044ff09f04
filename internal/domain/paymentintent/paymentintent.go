// Package paymentintent maps processor payment intents to local orders.
package paymentintent

import (
	"context"
	"errors"
	"time"

	"AirwallexPayments/internal/domain/order"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source paymentintent.go -destination mock_paymentintent.go -package paymentintent

var (
	// ErrNotFound is returned when the intent was never registered.
	ErrNotFound = errors.New("payment intent not found")

	// ErrConflict is returned when the intent is already linked to another order.
	ErrConflict = errors.New("payment intent already linked to a different order")

	// ErrInvalidRequest is returned when a registration request fails validation.
	ErrInvalidRequest = errors.New("invalid payment intent")
)

// PaymentIntent is the local mirror of a processor intent, kept as a lookup key.
type PaymentIntent struct {
	ID        string          `json:"payment_intent_id"`
	OrderID   string          `json:"order_id"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store resolves the order behind a payment intent.
// A missing link is reported as nil, nil.
type Store interface {
	LoadOrderByPaymentIntent(ctx context.Context, intentID string) (*order.Order, error)
}

type Repo interface {
	// Register inserts the intent. An existing row with the same ID is returned unchanged.
	Register(ctx context.Context, intent PaymentIntent) (PaymentIntent, error)
	Get(ctx context.Context, id string) (*PaymentIntent, error)
}
