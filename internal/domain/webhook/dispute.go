package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"AirwallexPayments/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type disputeData struct {
	PaymentIntentID string           `json:"payment_intent_id" validate:"required"`
	ID              string           `json:"id" validate:"required"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        string           `json:"currency"`
	Reason          json.RawMessage  `json:"reason"`
}

// DisputeHandler flags the order for manual review. Totals are never touched.
type DisputeHandler struct {
	repo order.OrderRepo
	now  func() time.Time
}

func NewDisputeHandler(repo order.OrderRepo) *DisputeHandler {
	return &DisputeHandler{repo: repo, now: utcNow}
}

func (h *DisputeHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var d disputeData
	if err := decodeData(EventDisputeCreated, data, &d); err != nil {
		return err
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, d.PaymentIntentID)
		if err != nil {
			return err
		}

		sourceRef := "dispute:" + d.ID
		exists, err := tx.HasNote(ctx, o.ID, sourceRef)
		if err != nil {
			return fmt.Errorf("check dispute note: %w", err)
		}
		if exists {
			slog.InfoContext(ctx, "Dispute already noted", "order_id", o.ID, "dispute_id", d.ID)
			return nil
		}

		now := h.now()
		note := order.Note{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Kind:      order.NoteDispute,
			SourceRef: sourceRef,
			Body:      d.noteBody(),
			CreatedAt: now,
		}
		if err := tx.CreateNote(ctx, note); err != nil {
			return fmt.Errorf("create dispute note: %w", err)
		}

		o.UnderReview = true
		if err := saveOrder(ctx, tx, o, now); err != nil {
			return err
		}

		slog.WarnContext(ctx, "Order flagged for review after dispute",
			"order_id", o.ID, "dispute_id", d.ID, "payment_intent_id", d.PaymentIntentID)
		return nil
	})
}

func (d disputeData) noteBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dispute %s opened by the processor", d.ID)
	if d.Amount != nil {
		fmt.Fprintf(&b, " for %s %s", d.Amount.String(), d.Currency)
	}
	if reason := reasonText(d.Reason); reason != "" {
		fmt.Fprintf(&b, ". Reason: %s", reason)
	}
	return b.String()
}

// reasonText accepts a plain string or an object with a type or message.
func reasonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(strings.Join([]string{obj.Type, obj.Message}, " "))
	}
	return string(raw)
}
