// Package eventlog records what happened to every webhook event the service received.
package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

//go:generate mockgen -source eventlog.go -destination mock_eventlog.go -package eventlog

var ErrInvalidCursor = errors.New("invalid cursor")

type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeIgnored Outcome = "ignored"
	OutcomeFailed  Outcome = "failed"
)

type Sink interface {
	Record(ctx context.Context, entry NewEntry) (*Entry, error)
	List(ctx context.Context, query Query) (Page, error)
}

type Entry struct {
	ID string `json:"id"`
	NewEntry
}

type NewEntry struct {
	EventID         string          `json:"event_id,omitempty"`
	Name            string          `json:"name"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	Outcome         Outcome         `json:"outcome"`
	Error           string          `json:"error,omitempty"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ReceivedAt      time.Time       `json:"received_at"`
}

type Page struct {
	Items      []Entry `json:"items"`
	NextCursor string  `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type Query struct {
	Names            []string  `form:"name" url:"name,omitempty"`
	PaymentIntentIDs []string  `form:"payment_intent_id" url:"payment_intent_id,omitempty"`
	Outcomes         []Outcome `form:"outcome" url:"outcome,omitempty"`

	TimeFrom *time.Time `form:"time_from" time_format:"2006-01-02T15:04:05Z07:00" url:"time_from,omitempty"`
	TimeTo   *time.Time `form:"time_to" time_format:"2006-01-02T15:04:05Z07:00" url:"time_to,omitempty"`

	Limit   int    `form:"limit" url:"limit,omitempty"`
	Cursor  string `form:"cursor" url:"cursor,omitempty"`
	SortAsc bool   `form:"sort_asc" url:"sort_asc,omitempty"`
}

const (
	DefaultLimit = 10
	MaxLimit     = 1000
)

// Normalize clamps Limit into [1, MaxLimit], using DefaultLimit when unset.
func (q Query) Normalize() Query {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}
