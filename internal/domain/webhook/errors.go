package webhook

import (
	"errors"
	"fmt"
)

// ErrOutOfOrder is returned when an event needs a state the order has not reached yet.
// The processor redelivers, so the event is applied once the earlier one lands.
var ErrOutOfOrder = errors.New("event arrived before the order reached the required state")

// DecodeError means the notification body could not be turned into an Event.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode webhook: %s: %v", e.Reason, e.Err)
	}
	return "decode webhook: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError means the event data breaks a rule of its handler.
// Nothing is applied when it is returned.
type ValidationError struct {
	Event  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s data: %s", e.Event, e.Reason)
}

// OrderNotFoundError means no local order is linked to the payment intent.
type OrderNotFoundError struct {
	PaymentIntentID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("payment intent %s: can't find order", e.PaymentIntentID)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsOrderNotFound(err error) bool {
	var target *OrderNotFoundError
	return errors.As(err, &target)
}
