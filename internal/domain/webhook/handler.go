package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func decodeData(event string, data json.RawMessage, v any) error {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &ValidationError{Event: event, Reason: "data is missing"}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ValidationError{Event: event, Reason: err.Error()}
	}
	if err := validate.Struct(v); err != nil {
		return &ValidationError{Event: event, Reason: err.Error()}
	}
	return nil
}

func requirePositive(event, field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return &ValidationError{Event: event, Reason: field + " must be positive"}
	}
	return nil
}

func loadOrder(ctx context.Context, store paymentintent.Store, intentID string) (*order.Order, error) {
	o, err := store.LoadOrderByPaymentIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("load order by payment intent: %w", err)
	}
	if o == nil {
		return nil, &OrderNotFoundError{PaymentIntentID: intentID}
	}
	return o, nil
}

func saveOrder(ctx context.Context, tx order.TxOrderRepo, o *order.Order, now time.Time) error {
	o.UpdatedAt = now
	if err := tx.UpdateOrder(ctx, *o); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
