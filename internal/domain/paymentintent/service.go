package paymentintent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	PaymentIntentID string          `json:"payment_intent_id" validate:"required"`
	OrderID         string          `json:"order_id" validate:"required"`
	Currency        string          `json:"currency" validate:"required,len=3"`
	Amount          decimal.Decimal `json:"amount"`
}

type Service struct {
	repo     Repo
	validate *validator.Validate
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// Register links the intent to its order. Repeating the same link is a no-op,
// linking the intent to another order fails with ErrConflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (PaymentIntent, error) {
	if err := s.validate.Struct(req); err != nil {
		return PaymentIntent{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}
	if !req.Amount.IsPositive() {
		return PaymentIntent{}, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	stored, err := s.repo.Register(ctx, PaymentIntent{
		ID:        req.PaymentIntentID,
		OrderID:   req.OrderID,
		Currency:  strings.ToUpper(req.Currency),
		Amount:    req.Amount,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return PaymentIntent{}, fmt.Errorf("register payment intent: %w", err)
	}

	if stored.OrderID != req.OrderID {
		return PaymentIntent{}, ErrConflict
	}
	return stored, nil
}

func (s *Service) Get(ctx context.Context, id string) (PaymentIntent, error) {
	intent, err := s.repo.Get(ctx, id)
	if err != nil {
		return PaymentIntent{}, fmt.Errorf("get payment intent: %w", err)
	}
	if intent == nil {
		return PaymentIntent{}, ErrNotFound
	}
	return *intent, nil
}
