package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"AirwallexPayments/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureHandler_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("books an offline invoice for the captured amount", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "50.00"), "int_1")
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":50.00}`))

		// then
		require.NoError(t, err)
		require.Len(t, repo.invoices, 1)
		invoice := repo.invoices[0]
		assert.Equal(t, "ord_1", invoice.OrderID)
		assert.Equal(t, "int_1", invoice.TransactionID)
		assert.Equal(t, order.CaptureOffline, invoice.CaptureMode)
		assert.False(t, invoice.CustomerNotified)
		assertAmount(t, "50", invoice.Amount)

		o := repo.order(t, "ord_1")
		assert.True(t, o.InProcess)
		assert.False(t, o.CustomerNoteNotify)
		assert.Equal(t, order.StateInvoiced, o.State)
		assertAmount(t, "50", o.TotalPaid)
		assert.True(t, o.AmountDue().IsZero())
	})

	t.Run("redelivery does not book a second invoice", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "50.00"), "int_1")
		handler := NewCaptureHandler(repo)
		data := json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":"50.00"}`)

		// when
		require.NoError(t, handler.Execute(ctx, data))
		require.NoError(t, handler.Execute(ctx, data))

		// then
		assert.Len(t, repo.invoices, 1)
		assertAmount(t, "50", repo.order(t, "ord_1").TotalPaid)
	})

	t.Run("partial captures invoice only the new part", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "100.00"), "int_1")
		handler := NewCaptureHandler(repo)

		// when
		require.NoError(t, handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":40}`)))
		require.NoError(t, handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":40}`)))
		require.NoError(t, handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":100}`)))

		// then
		require.Len(t, repo.invoices, 2)
		assertAmount(t, "40", repo.invoices[0].Amount)
		assertAmount(t, "60", repo.invoices[1].Amount)
		o := repo.order(t, "ord_1")
		assertAmount(t, "100", o.TotalPaid)
		assert.Equal(t, order.StateInvoiced, o.State)
	})

	t.Run("fully paid order is left alone", func(t *testing.T) {
		// given
		repo := newMemRepo()
		paid := pendingOrder("ord_1", "50.00")
		paid.TotalPaid = dec("50.00")
		paid.State = order.StateInvoiced
		repo.addOrder(paid, "int_2")
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_2","captured_amount":50}`))

		// then
		require.NoError(t, err)
		assert.Empty(t, repo.invoices)
		assert.False(t, repo.order(t, "ord_1").InProcess)
	})

	t.Run("capture after cancellation is booked without reopening", func(t *testing.T) {
		// given
		repo := newMemRepo()
		canceled := pendingOrder("ord_1", "40")
		canceled.State = order.StateCanceled
		repo.addOrder(canceled, "int_1")

		// when
		err := NewCaptureHandler(repo).Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":40}`))

		// then
		require.NoError(t, err)
		assert.Len(t, repo.invoices, 1)
		o := repo.order(t, "ord_1")
		assert.Equal(t, order.StateCanceled, o.State)
		assert.False(t, o.InProcess)
		assertAmount(t, "40", o.TotalPaid)
	})

	t.Run("authorized order moves to invoiced", func(t *testing.T) {
		// given
		repo := newMemRepo()
		authorized := pendingOrder("ord_1", "20")
		authorized.State = order.StateAuthorized
		repo.addOrder(authorized, "int_1")
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":20}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, order.StateInvoiced, repo.order(t, "ord_1").State)
	})

	t.Run("capture above amount due is rejected", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "50.00"), "int_1")
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":80}`))

		// then
		assert.True(t, IsValidationError(err))
		assert.Empty(t, repo.invoices)
		assert.True(t, repo.order(t, "ord_1").TotalPaid.IsZero())
	})

	t.Run("unknown payment intent", func(t *testing.T) {
		// given
		repo := newMemRepo()
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_404","captured_amount":10}`))

		// then
		var notFound *OrderNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "int_404", notFound.PaymentIntentID)
	})

	t.Run("failed write rolls the whole capture back", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "50.00"), "int_1")
		dbErr := errors.New("connection reset")
		repo.errOn["UpdateOrder"] = dbErr
		handler := NewCaptureHandler(repo)

		// when
		err := handler.Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":50}`))

		// then
		require.ErrorIs(t, err, dbErr)
		assert.Empty(t, repo.invoices)
		o := repo.order(t, "ord_1")
		assert.True(t, o.TotalPaid.IsZero())
		assert.Equal(t, order.StatePendingPayment, o.State)
	})

	t.Run("concurrent deliveries book one invoice", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "75.50"), "int_1")
		handler := NewCaptureHandler(repo)
		data := json.RawMessage(`{"payment_intent_id":"int_1","captured_amount":75.50}`)

		// when
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- handler.Execute(ctx, data)
			}()
		}
		wg.Wait()
		close(errs)

		// then
		for err := range errs {
			require.NoError(t, err)
		}
		assert.Len(t, repo.invoices, 1)
		assertAmount(t, "75.5", repo.order(t, "ord_1").TotalPaid)
	})
}

func TestCaptureHandler_Execute_InvalidData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data string
	}{
		{name: "missing data", data: ``},
		{name: "null data", data: `null`},
		{name: "not an object", data: `"int_1"`},
		{name: "missing payment intent", data: `{"captured_amount":10}`},
		{name: "missing captured amount", data: `{"payment_intent_id":"int_1"}`},
		{name: "amount is not a number", data: `{"payment_intent_id":"int_1","captured_amount":"ten"}`},
		{name: "zero amount", data: `{"payment_intent_id":"int_1","captured_amount":0}`},
		{name: "negative amount", data: `{"payment_intent_id":"int_1","captured_amount":-5}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			repo := newMemRepo()
			repo.addOrder(pendingOrder("ord_1", "50"), "int_1")
			handler := NewCaptureHandler(repo)

			// when
			err := handler.Execute(context.Background(), json.RawMessage(tc.data))

			// then
			assert.True(t, IsValidationError(err), "got %v", err)
			assert.Zero(t, repo.txCount)
		})
	}
}
