package order

import "errors"

var (
	// ErrNotFound is returned when an order with the given ID does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidState is returned when a stored state is not one of AvailableStates.
	ErrInvalidState = errors.New("invalid order state")

	// ErrDocumentExists is returned when a financial document with the same business key is already stored.
	ErrDocumentExists = errors.New("document already exists")
)
