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

type captureData struct {
	PaymentIntentID string           `json:"payment_intent_id" validate:"required"`
	CapturedAmount  *decimal.Decimal `json:"captured_amount" validate:"required"`
}

// CaptureHandler books a capture that already happened at the processor as an offline invoice.
type CaptureHandler struct {
	repo order.OrderRepo
	now  func() time.Time
}

func NewCaptureHandler(repo order.OrderRepo) *CaptureHandler {
	return &CaptureHandler{repo: repo, now: utcNow}
}

func (h *CaptureHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var d captureData
	if err := decodeData(EventCaptureRequested, data, &d); err != nil {
		return err
	}
	if err := requirePositive(EventCaptureRequested, "captured_amount", *d.CapturedAmount); err != nil {
		return err
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, d.PaymentIntentID)
		if err != nil {
			return err
		}

		paid := o.AmountDue()
		if paid.IsZero() {
			slog.InfoContext(ctx, "Order already paid, capture ignored",
				"order_id", o.ID, "payment_intent_id", d.PaymentIntentID)
			return nil
		}

		// captured_amount is cumulative for the intent, only the part not yet invoiced is booked.
		invoiced, err := tx.InvoicedAmount(ctx, o.ID, d.PaymentIntentID)
		if err != nil {
			return fmt.Errorf("load invoiced amount: %w", err)
		}
		amount := d.CapturedAmount.Sub(invoiced)
		if !amount.IsPositive() {
			slog.InfoContext(ctx, "Capture already invoiced",
				"order_id", o.ID, "payment_intent_id", d.PaymentIntentID, "invoiced", invoiced.String())
			return nil
		}
		if amount.GreaterThan(paid) {
			return &ValidationError{
				Event:  EventCaptureRequested,
				Reason: fmt.Sprintf("captured amount %s exceeds amount due %s", amount, paid),
			}
		}

		now := h.now()
		invoice := order.Invoice{
			ID:               uuid.NewString(),
			OrderID:          o.ID,
			TransactionID:    d.PaymentIntentID,
			Amount:           amount,
			CaptureMode:      order.CaptureOffline,
			CustomerNotified: false,
			CreatedAt:        now,
		}
		if err := tx.CreateInvoice(ctx, invoice); err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		o.TotalPaid = o.TotalPaid.Add(amount)
		o.CustomerNoteNotify = false
		if !o.State.IsTerminal() {
			o.InProcess = true
			if !o.State.IsPaid() {
				o.State = order.StateInvoiced
			}
		}
		if err := saveOrder(ctx, tx, o, now); err != nil {
			return err
		}

		slog.InfoContext(ctx, "Offline invoice created",
			"order_id", o.ID, "payment_intent_id", d.PaymentIntentID,
			"invoice_id", invoice.ID, "amount", amount.String())
		return nil
	})
}
