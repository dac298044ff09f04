package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"AirwallexPayments/internal/domain/eventlog"

	"github.com/gin-gonic/gin"
	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func eventsEngine(sink eventlog.Sink) *gin.Engine {
	h := NewEventLogHandler(sink)
	engine := gin.New()
	engine.GET("/webhooks/events", h.List)
	return engine
}

func TestEventLogHandler_List(t *testing.T) {
	t.Run("binds filters from the query string", func(t *testing.T) {
		// given
		from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		q := eventlog.Query{
			Names:            []string{"refund.succeeded", "dispute.created"},
			PaymentIntentIDs: []string{"int_1"},
			Outcomes:         []eventlog.Outcome{eventlog.OutcomeFailed},
			TimeFrom:         &from,
			Limit:            25,
			SortAsc:          true,
		}
		values, err := query.Values(q)
		require.NoError(t, err)

		sink := eventlog.NewMockSink(gomock.NewController(t))
		sink.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got eventlog.Query) (eventlog.Page, error) {
				assert.Equal(t, q.Names, got.Names)
				assert.Equal(t, q.PaymentIntentIDs, got.PaymentIntentIDs)
				assert.Equal(t, q.Outcomes, got.Outcomes)
				require.NotNil(t, got.TimeFrom)
				assert.True(t, from.Equal(*got.TimeFrom))
				assert.Equal(t, 25, got.Limit)
				assert.True(t, got.SortAsc)
				return eventlog.Page{Items: []eventlog.Entry{{ID: "e1"}}, HasMore: false}, nil
			})

		// when
		w := serve(eventsEngine(sink), http.MethodGet, "/webhooks/events?"+values.Encode(), nil, nil)

		// then
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["items"], 1)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		sink := eventlog.NewMockSink(gomock.NewController(t))
		sink.EXPECT().List(gomock.Any(), gomock.Any()).Return(eventlog.Page{}, eventlog.ErrInvalidCursor)

		w := serve(eventsEngine(sink), http.MethodGet, "/webhooks/events?cursor=abc", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed limit", func(t *testing.T) {
		sink := eventlog.NewMockSink(gomock.NewController(t))

		w := serve(eventsEngine(sink), http.MethodGet, "/webhooks/events?limit=many", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
