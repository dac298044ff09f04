package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"AirwallexPayments/internal/domain/order"
)

//go:generate mockgen -source fail.go -destination mock_releaser.go -package webhook

// Releaser frees whatever the platform reserved for the order outside this service,
// such as stock or the processor-side hold.
type Releaser interface {
	Release(ctx context.Context, o order.Order, paymentIntentID string) error
}

type failData struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	FailureCode     string `json:"failure_code"`
}

type FailHandler struct {
	repo     order.OrderRepo
	releaser Releaser
	now      func() time.Time
}

func NewFailHandler(repo order.OrderRepo, releaser Releaser) *FailHandler {
	return &FailHandler{repo: repo, releaser: releaser, now: utcNow}
}

func (h *FailHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var d failData
	if err := decodeData(EventAttemptFailed, data, &d); err != nil {
		return err
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, d.PaymentIntentID)
		if err != nil {
			return err
		}

		if o.State.IsTerminal() {
			slog.InfoContext(ctx, "Order is final, failure ignored",
				"order_id", o.ID, "state", o.State)
			return nil
		}

		now := h.now()
		released, err := tx.ReleaseAuthorizations(ctx, o.ID, now)
		if err != nil {
			return fmt.Errorf("release authorizations: %w", err)
		}

		o.State = order.StateCanceled
		o.InProcess = false
		if err := saveOrder(ctx, tx, o, now); err != nil {
			return err
		}

		// Runs last so a failed release rolls the cancellation back and the redelivery retries both.
		if err := h.releaser.Release(ctx, *o, d.PaymentIntentID); err != nil {
			return fmt.Errorf("release order resources: %w", err)
		}

		slog.InfoContext(ctx, "Order canceled",
			"order_id", o.ID, "payment_intent_id", d.PaymentIntentID,
			"failure_code", d.FailureCode, "released_authorizations", released)
		return nil
	})
}
