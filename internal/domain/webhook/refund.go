package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"AirwallexPayments/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// refundData accepts the refund object as the processor sends it (id, amount)
// and the explicit refund_id / refunded_amount form.
type refundData struct {
	PaymentIntentID string           `json:"payment_intent_id" validate:"required"`
	RefundID        string           `json:"refund_id" validate:"required_without=ID"`
	ID              string           `json:"id"`
	RefundedAmount  *decimal.Decimal `json:"refunded_amount" validate:"required_without=Amount"`
	Amount          *decimal.Decimal `json:"amount"`
}

func (d refundData) refundID() string {
	if d.RefundID != "" {
		return d.RefundID
	}
	return d.ID
}

func (d refundData) amount() decimal.Decimal {
	if d.RefundedAmount != nil {
		return *d.RefundedAmount
	}
	return *d.Amount
}

type RefundHandler struct {
	repo order.OrderRepo
	now  func() time.Time
}

func NewRefundHandler(repo order.OrderRepo) *RefundHandler {
	return &RefundHandler{repo: repo, now: utcNow}
}

func (h *RefundHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var d refundData
	if err := decodeData(EventRefundSucceeded, data, &d); err != nil {
		return err
	}
	amount := d.amount()
	if err := requirePositive(EventRefundSucceeded, "refunded_amount", amount); err != nil {
		return err
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, d.PaymentIntentID)
		if err != nil {
			return err
		}

		existing, err := tx.GetCreditMemoByRefundID(ctx, d.refundID())
		if err != nil {
			return fmt.Errorf("load credit memo: %w", err)
		}
		if existing != nil {
			slog.InfoContext(ctx, "Refund already booked",
				"order_id", o.ID, "refund_id", d.refundID(), "credit_memo_id", existing.ID)
			return nil
		}

		refundable := o.Refundable()
		if amount.GreaterThan(refundable) {
			return &ValidationError{
				Event:  EventRefundSucceeded,
				Reason: fmt.Sprintf("refunded amount %s exceeds refundable %s", amount, refundable),
			}
		}

		now := h.now()
		memo := order.CreditMemo{
			ID:              uuid.NewString(),
			OrderID:         o.ID,
			PaymentIntentID: d.PaymentIntentID,
			RefundID:        d.refundID(),
			Amount:          amount,
			CreatedAt:       now,
		}
		if err := tx.CreateCreditMemo(ctx, memo); err != nil {
			return fmt.Errorf("create credit memo: %w", err)
		}

		o.TotalRefunded = o.TotalRefunded.Add(amount)
		// Only an invoiced order moves along the refund edge, a completed or canceled one keeps its state.
		if o.State == order.StateInvoiced || o.State == order.StatePartiallyRefunded {
			if o.Refundable().IsZero() {
				o.State = order.StateRefunded
			} else {
				o.State = order.StatePartiallyRefunded
			}
		}
		if err := saveOrder(ctx, tx, o, now); err != nil {
			return err
		}

		slog.InfoContext(ctx, "Credit memo created",
			"order_id", o.ID, "refund_id", memo.RefundID, "amount", amount.String(), "state", o.State)
		return nil
	})
}
