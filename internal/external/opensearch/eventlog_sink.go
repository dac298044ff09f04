// Package opensearch stores the webhook event log in an OpenSearch index.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"AirwallexPayments/internal/domain/eventlog"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
)

var _ eventlog.Sink = (*EventLogSink)(nil)

type EventLogSink struct {
	client  *opensearch.Client
	index   string
	refresh bool
}

type Option func(*EventLogSink)

// WithRefresh makes every write visible to the next search.
func WithRefresh() Option {
	return func(s *EventLogSink) {
		s.refresh = true
	}
}

func NewEventLogSink(ctx context.Context, urls []string, index string, opts ...Option) (*EventLogSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventLogSink{client: client, index: index}
	for _, opt := range opts {
		opt(sink)
	}

	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

// Ping reports whether the cluster answers. Used by the readiness check.
func (s *EventLogSink) Ping(ctx context.Context) error {
	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ping error: %s", res.String())
	}
	return nil
}

func (s *EventLogSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":                map[string]any{"type": "keyword"},
				"event_id":          map[string]any{"type": "keyword"},
				"name":              map[string]any{"type": "keyword"},
				"payment_intent_id": map[string]any{"type": "keyword"},
				"outcome":           map[string]any{"type": "keyword"},
				"error":             map[string]any{"type": "text"},
				"received_at":       map[string]any{"type": "date"},
				"payload":           map[string]any{"type": "object", "enabled": false},
			},
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type eventDoc struct {
	ID              string          `json:"id"`
	EventID         string          `json:"event_id,omitempty"`
	Name            string          `json:"name"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	Outcome         string          `json:"outcome"`
	Error           string          `json:"error,omitempty"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ReceivedAt      time.Time       `json:"received_at"`
}

func (s *EventLogSink) Record(ctx context.Context, entry eventlog.NewEntry) (*eventlog.Entry, error) {
	id := uuid.NewString()
	if entry.ReceivedAt.IsZero() {
		entry.ReceivedAt = time.Now().UTC()
	}
	// the index keeps millisecond precision; cursors must match what search returns
	entry.ReceivedAt = entry.ReceivedAt.UTC().Truncate(time.Millisecond)

	payload, _ := json.Marshal(eventDoc{
		ID:              id,
		EventID:         entry.EventID,
		Name:            entry.Name,
		PaymentIntentID: entry.PaymentIntentID,
		Outcome:         string(entry.Outcome),
		Error:           entry.Error,
		Payload:         entry.Payload,
		ReceivedAt:      entry.ReceivedAt,
	})

	opts := []func(*opensearchapi.IndexRequest){
		s.client.Index.WithDocumentID(id),
		s.client.Index.WithContext(ctx),
	}
	if s.refresh {
		opts = append(opts, s.client.Index.WithRefresh("true"))
	}

	res, err := s.client.Index(s.index, bytes.NewReader(payload), opts...)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("index error: %s", res.String())
	}

	return &eventlog.Entry{ID: id, NewEntry: entry}, nil
}

func (s *EventLogSink) List(ctx context.Context, query eventlog.Query) (eventlog.Page, error) {
	query = query.Normalize()

	body, err := buildSearchBody(query)
	if err != nil {
		return eventlog.Page{}, err
	}
	raw, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return eventlog.Page{}, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return eventlog.Page{}, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return eventlog.Page{}, fmt.Errorf("decode search: %w", err)
	}

	items := make([]eventlog.Entry, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		var doc eventDoc
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return eventlog.Page{}, fmt.Errorf("decode hit: %w", err)
		}
		id := doc.ID
		if id == "" {
			id = h.ID
		}
		items = append(items, eventlog.Entry{
			ID: id,
			NewEntry: eventlog.NewEntry{
				EventID:         doc.EventID,
				Name:            doc.Name,
				PaymentIntentID: doc.PaymentIntentID,
				Outcome:         eventlog.Outcome(doc.Outcome),
				Error:           doc.Error,
				Payload:         doc.Payload,
				ReceivedAt:      doc.ReceivedAt,
			},
		})
	}

	return eventlog.NewPage(items, query.Limit), nil
}

// buildSearchBody mirrors the Postgres listing: bool filters, (received_at, id)
// ordering and search_after for the cursor.
func buildSearchBody(q eventlog.Query) (map[string]any, error) {
	filters := make([]map[string]any, 0, 4)
	if len(q.Names) > 0 {
		filters = append(filters, map[string]any{"terms": map[string]any{"name": q.Names}})
	}
	if len(q.PaymentIntentIDs) > 0 {
		filters = append(filters, map[string]any{"terms": map[string]any{"payment_intent_id": q.PaymentIntentIDs}})
	}
	if len(q.Outcomes) > 0 {
		filters = append(filters, map[string]any{"terms": map[string]any{"outcome": q.Outcomes}})
	}
	if q.TimeFrom != nil || q.TimeTo != nil {
		rng := map[string]any{}
		if q.TimeFrom != nil {
			rng["gte"] = q.TimeFrom.UTC().Format(time.RFC3339Nano)
		}
		if q.TimeTo != nil {
			rng["lt"] = q.TimeTo.UTC().Format(time.RFC3339Nano)
		}
		filters = append(filters, map[string]any{"range": map[string]any{"received_at": rng}})
	}

	order := "desc"
	if q.SortAsc {
		order = "asc"
	}

	body := map[string]any{
		"size": q.Limit + 1,
		"query": map[string]any{
			"bool": map[string]any{"filter": filters},
		},
		"sort": []map[string]any{
			{"received_at": map[string]any{"order": order}},
			{"id": map[string]any{"order": order}},
		},
	}

	if q.Cursor != "" {
		cursor, err := eventlog.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, err
		}
		body["search_after"] = []any{cursor.ReceivedAt.UnixMilli(), cursor.ID}
	}
	return body, nil
}
