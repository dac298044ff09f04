package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"AirwallexPayments/internal/domain/order"
)

type SuccessHandler struct {
	repo order.OrderRepo
	now  func() time.Time
}

func NewSuccessHandler(repo order.OrderRepo) *SuccessHandler {
	return &SuccessHandler{repo: repo, now: utcNow}
}

func (h *SuccessHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var ref intentRef
	if err := decodeData(EventIntentSucceeded, data, &ref); err != nil {
		return err
	}
	intentID := ref.intentID()
	if intentID == "" {
		return &ValidationError{Event: EventIntentSucceeded, Reason: "payment_intent_id is required"}
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, intentID)
		if err != nil {
			return err
		}

		switch o.State {
		case order.StateInvoiced:
		case order.StatePendingPayment, order.StateAuthorized:
			return fmt.Errorf("order %s is %s: %w", o.ID, o.State, ErrOutOfOrder)
		default:
			slog.InfoContext(ctx, "Order already past invoiced, success ignored",
				"order_id", o.ID, "state", o.State)
			return nil
		}

		o.State = order.StateComplete
		o.InProcess = false
		if err := saveOrder(ctx, tx, o, h.now()); err != nil {
			return err
		}

		slog.InfoContext(ctx, "Order completed", "order_id", o.ID, "payment_intent_id", intentID)
		return nil
	})
}
