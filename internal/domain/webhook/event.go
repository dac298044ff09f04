// Package webhook turns processor notifications into order state transitions.
package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	EventCaptureRequested = "payment_attempt.capture_requested"
	EventAuthorized       = "payment_attempt.authorized"
	EventAttemptFailed    = "payment_attempt.failed_to_process"
	EventIntentSucceeded  = "payment_intent.succeeded"
	EventRefundSucceeded  = "refund.succeeded"
	EventDisputeCreated   = "dispute.created"
)

// Event is one decoded notification. Data is left opaque for the handler.
type Event struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	AccountID string          `json:"account_id,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	Data      json.RawMessage `json:"data"`
}

type envelope struct {
	ID        string          `json:"id"`
	Name      *string         `json:"name"`
	AccountID string          `json:"account_id"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// Decode parses a notification body. It fails with *DecodeError when the body
// is not a JSON object or has no name. When data wraps a single "object"
// member, as the processor sends it, that member becomes the event data.
func Decode(body []byte) (Event, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Event{}, &DecodeError{Reason: "empty body"}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Event{}, &DecodeError{Reason: "body is not a JSON object", Err: err}
	}
	if env.Name == nil || strings.TrimSpace(*env.Name) == "" {
		return Event{}, &DecodeError{Reason: "missing name"}
	}

	return Event{
		ID:        env.ID,
		Name:      strings.TrimSpace(*env.Name),
		AccountID: env.AccountID,
		CreatedAt: env.CreatedAt,
		Data:      unwrapObject(env.Data),
	}, nil
}

func unwrapObject(data json.RawMessage) json.RawMessage {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil || len(members) != 1 {
		return data
	}
	if object, ok := members["object"]; ok && len(object) > 0 {
		return object
	}
	return data
}

// PaymentIntentID extracts the intent reference without validating the payload.
// It returns an empty string when the data carries none.
func (e Event) PaymentIntentID() string {
	var ref intentRef
	if err := json.Unmarshal(e.Data, &ref); err != nil {
		return ""
	}
	if strings.HasPrefix(e.Name, "payment_intent.") {
		return ref.intentID()
	}
	return ref.PaymentIntentID
}

// intentRef reads the intent id. Payment intent events carry the intent itself,
// so its own id is the reference.
type intentRef struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ID              string `json:"id"`
}

func (r intentRef) intentID() string {
	if r.PaymentIntentID != "" {
		return r.PaymentIntentID
	}
	return r.ID
}
