package order

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 string          `json:"order_id"`
	Currency           string          `json:"currency"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	TotalRefunded      decimal.Decimal `json:"total_refunded"`
	State              State           `json:"state"`
	InProcess          bool            `json:"in_process"`
	CustomerNoteNotify bool            `json:"customer_note_notify"`
	UnderReview        bool            `json:"under_review"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AmountDue is what the processor has not yet captured for the order.
func (o Order) AmountDue() decimal.Decimal {
	return o.GrandTotal.Sub(o.TotalPaid)
}

// Refundable is the captured amount not yet returned to the customer.
func (o Order) Refundable() decimal.Decimal {
	return o.TotalPaid.Sub(o.TotalRefunded)
}

type State string

const (
	StatePendingPayment    State = "pending_payment"
	StateAuthorized        State = "authorized"
	StateInvoiced          State = "invoiced"
	StatePartiallyRefunded State = "partially_refunded"
	StateRefunded          State = "refunded"
	StateComplete          State = "complete"
	StateCanceled          State = "canceled"
)

var AvailableStates = []State{
	StatePendingPayment,
	StateAuthorized,
	StateInvoiced,
	StatePartiallyRefunded,
	StateRefunded,
	StateComplete,
	StateCanceled,
}

func NewState(raw string) (State, error) {
	if slices.Contains(AvailableStates, State(raw)) {
		return State(raw), nil
	}
	return "", ErrInvalidState
}

// IsTerminal reports whether no further lifecycle edge leaves the state.
func (s State) IsTerminal() bool {
	switch s {
	case StateComplete, StateCanceled, StateRefunded:
		return true
	default:
		return false
	}
}

// IsPaid reports whether the order has reached Invoiced or a state after it.
func (s State) IsPaid() bool {
	switch s {
	case StateInvoiced, StatePartiallyRefunded, StateRefunded, StateComplete:
		return true
	default:
		return false
	}
}

type CaptureMode string

const (
	CaptureOnline  CaptureMode = "online"
	CaptureOffline CaptureMode = "offline"
)

// Invoice records money captured for an order. TransactionID holds the payment intent id.
type Invoice struct {
	ID               string          `json:"invoice_id"`
	OrderID          string          `json:"order_id"`
	TransactionID    string          `json:"transaction_id"`
	Amount           decimal.Decimal `json:"amount"`
	CaptureMode      CaptureMode     `json:"capture_mode"`
	CustomerNotified bool            `json:"customer_notified"`
	CreatedAt        time.Time       `json:"created_at"`
}

type CreditMemo struct {
	ID              string          `json:"credit_memo_id"`
	OrderID         string          `json:"order_id"`
	PaymentIntentID string          `json:"payment_intent_id"`
	RefundID        string          `json:"refund_id"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Authorization is a hold placed on the customer's funds for one payment intent.
type Authorization struct {
	ID              string          `json:"authorization_id"`
	OrderID         string          `json:"order_id"`
	PaymentIntentID string          `json:"payment_intent_id"`
	Amount          decimal.Decimal `json:"amount"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type NoteKind string

const (
	NoteDispute NoteKind = "dispute"
)

// Note is an operator-facing comment. SourceRef makes it unique per order.
type Note struct {
	ID        string    `json:"note_id"`
	OrderID   string    `json:"order_id"`
	Kind      NoteKind  `json:"kind"`
	SourceRef string    `json:"source_ref"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Details is an order with every document attached to it.
type Details struct {
	Order
	Invoices       []Invoice       `json:"invoices"`
	CreditMemos    []CreditMemo    `json:"credit_memos"`
	Authorizations []Authorization `json:"authorizations"`
	Notes          []Note          `json:"notes"`
}
