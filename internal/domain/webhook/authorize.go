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

type authorizeData struct {
	PaymentIntentID string           `json:"payment_intent_id" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
}

// AuthorizeHandler records the hold placed on the customer's funds, once per intent.
type AuthorizeHandler struct {
	repo order.OrderRepo
	now  func() time.Time
}

func NewAuthorizeHandler(repo order.OrderRepo) *AuthorizeHandler {
	return &AuthorizeHandler{repo: repo, now: utcNow}
}

func (h *AuthorizeHandler) Execute(ctx context.Context, data json.RawMessage) error {
	var d authorizeData
	if err := decodeData(EventAuthorized, data, &d); err != nil {
		return err
	}
	if err := requirePositive(EventAuthorized, "amount", *d.Amount); err != nil {
		return err
	}

	return h.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		o, err := loadOrder(ctx, tx, d.PaymentIntentID)
		if err != nil {
			return err
		}

		existing, err := tx.GetAuthorizationByIntent(ctx, d.PaymentIntentID)
		if err != nil {
			return fmt.Errorf("load authorization: %w", err)
		}
		if existing != nil {
			slog.InfoContext(ctx, "Authorization already recorded",
				"order_id", o.ID, "payment_intent_id", d.PaymentIntentID, "authorization_id", existing.ID)
			return nil
		}
		if o.State.IsTerminal() {
			slog.InfoContext(ctx, "Order is final, authorization ignored",
				"order_id", o.ID, "state", o.State)
			return nil
		}

		now := h.now()
		auth := order.Authorization{
			ID:              uuid.NewString(),
			OrderID:         o.ID,
			PaymentIntentID: d.PaymentIntentID,
			Amount:          *d.Amount,
			CreatedAt:       now,
		}
		if err := tx.CreateAuthorization(ctx, auth); err != nil {
			return fmt.Errorf("create authorization: %w", err)
		}

		if o.State == order.StatePendingPayment {
			o.State = order.StateAuthorized
		}
		if err := saveOrder(ctx, tx, o, now); err != nil {
			return err
		}

		slog.InfoContext(ctx, "Authorization recorded",
			"order_id", o.ID, "payment_intent_id", d.PaymentIntentID, "amount", d.Amount.String())
		return nil
	})
}
