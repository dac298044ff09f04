package eventlog_repo

import (
	"context"
	"fmt"

	"AirwallexPayments/internal/domain/eventlog"
	"AirwallexPayments/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var eventColumns = []string{"id", "event_id", "name", "payment_intent_id", "outcome", "error", "payload", "received_at"}

type PgEventLogRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ eventlog.Sink = (*PgEventLogRepo)(nil)

func NewPgEventLogRepo(pg *postgres.Postgres) *PgEventLogRepo {
	return &PgEventLogRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgEventLogRepo) Record(ctx context.Context, entry eventlog.NewEntry) (*eventlog.Entry, error) {
	id := uuid.New().String()

	query, args, err := r.builder.Insert("webhook_events").
		Columns(eventColumns...).
		Values(id, entry.EventID, entry.Name, entry.PaymentIntentID, string(entry.Outcome), entry.Error, entry.Payload, entry.ReceivedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert webhook event: %w", err)
	}

	return &eventlog.Entry{ID: id, NewEntry: entry}, nil
}

func (r *PgEventLogRepo) List(ctx context.Context, query eventlog.Query) (eventlog.Page, error) {
	query = query.Normalize()

	sqlQuery, args, err := r.buildPageQuery(query)
	if err != nil {
		return eventlog.Page{}, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return eventlog.Page{}, fmt.Errorf("query webhook events: %w", err)
	}
	defer rows.Close()

	items, err := parseEventRows(rows)
	if err != nil {
		return eventlog.Page{}, fmt.Errorf("parse webhook events: %w", err)
	}

	return eventlog.NewPage(items, query.Limit), nil
}

// SELECT ... FROM webhook_events
// WHERE
//
//	name IN @Names
//	AND payment_intent_id IN @PaymentIntentIDs
//	AND outcome IN @Outcomes
//	AND received_at >= @TimeFrom
//	AND received_at < @TimeTo
//	AND (received_at, id) < (@cursor.ReceivedAt, @cursor.ID)
//
// ORDER BY received_at DESC/ASC, id DESC/ASC
// LIMIT @Limit+1
func (r *PgEventLogRepo) buildPageQuery(q eventlog.Query) (string, []any, error) {
	b := r.builder.Select(eventColumns...).From("webhook_events")

	if len(q.Names) > 0 {
		b = b.Where(squirrel.Eq{"name": q.Names})
	}
	if len(q.PaymentIntentIDs) > 0 {
		b = b.Where(squirrel.Eq{"payment_intent_id": q.PaymentIntentIDs})
	}
	if len(q.Outcomes) > 0 {
		outcomes := make([]string, 0, len(q.Outcomes))
		for _, o := range q.Outcomes {
			outcomes = append(outcomes, string(o))
		}
		b = b.Where(squirrel.Eq{"outcome": outcomes})
	}
	if q.TimeFrom != nil {
		b = b.Where("received_at >= ?", q.TimeFrom.UTC())
	}
	if q.TimeTo != nil {
		b = b.Where("received_at < ?", q.TimeTo.UTC())
	}

	if q.Cursor != "" {
		cursor, err := eventlog.DecodeCursor(q.Cursor)
		if err != nil {
			return "", nil, err
		}
		if q.SortAsc {
			b = b.Where("(received_at, id) > (?, ?)", cursor.ReceivedAt.UTC(), cursor.ID)
		} else {
			b = b.Where("(received_at, id) < (?, ?)", cursor.ReceivedAt.UTC(), cursor.ID)
		}
	}

	if q.SortAsc {
		b = b.OrderBy("received_at ASC", "id ASC")
	} else {
		b = b.OrderBy("received_at DESC", "id DESC")
	}

	b = b.Limit(uint64(q.Limit + 1))

	sql, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build webhook event query: %w", err)
	}
	return sql, args, nil
}

func parseEventRows(rows pgx.Rows) ([]eventlog.Entry, error) {
	entries := []eventlog.Entry{}
	for rows.Next() {
		var e eventlog.Entry
		var outcome string
		err := rows.Scan(&e.ID, &e.EventID, &e.Name, &e.PaymentIntentID, &outcome, &e.Error, &e.Payload, &e.ReceivedAt)
		if err != nil {
			return nil, fmt.Errorf("scan webhook event row: %w", err)
		}
		e.Outcome = eventlog.Outcome(outcome)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook event rows: %w", err)
	}
	return entries, nil
}
