package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"AirwallexPayments/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthorizeHandler_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := json.RawMessage(`{"payment_intent_id":"int_1","amount":25.00}`)

	t.Run("records the hold and moves pending order to authorized", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "25"), "int_1")
		handler := NewAuthorizeHandler(repo)

		// when
		require.NoError(t, handler.Execute(ctx, data))
		require.NoError(t, handler.Execute(ctx, data))

		// then
		require.Len(t, repo.auths, 1)
		assert.Equal(t, "int_1", repo.auths[0].PaymentIntentID)
		assertAmount(t, "25", repo.auths[0].Amount)
		assert.Nil(t, repo.auths[0].ReleasedAt)
		assert.Equal(t, order.StateAuthorized, repo.order(t, "ord_1").State)
	})

	t.Run("final order is not touched", func(t *testing.T) {
		// given
		repo := newMemRepo()
		canceled := pendingOrder("ord_1", "25")
		canceled.State = order.StateCanceled
		repo.addOrder(canceled, "int_1")

		// when
		err := NewAuthorizeHandler(repo).Execute(ctx, data)

		// then
		require.NoError(t, err)
		assert.Empty(t, repo.auths)
		assert.Equal(t, order.StateCanceled, repo.order(t, "ord_1").State)
	})

	t.Run("already invoiced order keeps its state", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(invoicedOrder("ord_1", "25"), "int_1")

		// when
		err := NewAuthorizeHandler(repo).Execute(ctx, data)

		// then
		require.NoError(t, err)
		assert.Len(t, repo.auths, 1)
		assert.Equal(t, order.StateInvoiced, repo.order(t, "ord_1").State)
	})

	t.Run("missing amount", func(t *testing.T) {
		repo := newMemRepo()

		err := NewAuthorizeHandler(repo).Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1"}`))

		assert.True(t, IsValidationError(err))
		assert.Zero(t, repo.txCount)
	})
}

func TestSuccessHandler_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name          string
		state         order.State
		expectedState order.State
		expectedErr   error
	}{
		{name: "invoiced order completes", state: order.StateInvoiced, expectedState: order.StateComplete},
		{name: "success before capture", state: order.StatePendingPayment, expectedState: order.StatePendingPayment, expectedErr: ErrOutOfOrder},
		{name: "success before capture on authorized order", state: order.StateAuthorized, expectedState: order.StateAuthorized, expectedErr: ErrOutOfOrder},
		{name: "complete order stays complete", state: order.StateComplete, expectedState: order.StateComplete},
		{name: "refunded order is not reopened", state: order.StateRefunded, expectedState: order.StateRefunded},
		{name: "canceled order is not reopened", state: order.StateCanceled, expectedState: order.StateCanceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			repo := newMemRepo()
			o := invoicedOrder("ord_1", "10")
			o.State = tc.state
			o.InProcess = true
			repo.addOrder(o, "int_1")

			// when
			err := NewSuccessHandler(repo).Execute(ctx, json.RawMessage(`{"id":"int_1","status":"SUCCEEDED"}`))

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectedState, repo.order(t, "ord_1").State)
		})
	}

	t.Run("completion clears the in-process flag", func(t *testing.T) {
		repo := newMemRepo()
		o := invoicedOrder("ord_1", "10")
		o.InProcess = true
		repo.addOrder(o, "int_1")

		require.NoError(t, NewSuccessHandler(repo).Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1"}`)))

		assert.False(t, repo.order(t, "ord_1").InProcess)
	})

	t.Run("no intent reference", func(t *testing.T) {
		repo := newMemRepo()

		err := NewSuccessHandler(repo).Execute(ctx, json.RawMessage(`{"status":"SUCCEEDED"}`))

		assert.True(t, IsValidationError(err))
		assert.Zero(t, repo.txCount)
	})
}

func TestFailHandler_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := json.RawMessage(`{"payment_intent_id":"int_1","failure_code":"card_declined"}`)

	t.Run("cancels the order and releases its holds", func(t *testing.T) {
		// given
		repo := newMemRepo()
		o := pendingOrder("ord_1", "30")
		o.State = order.StateAuthorized
		repo.addOrder(o, "int_1")
		repo.auths = append(repo.auths, order.Authorization{ID: "auth_1", OrderID: "ord_1", PaymentIntentID: "int_1", Amount: dec("30")})

		releaser := NewMockReleaser(gomock.NewController(t))
		releaser.EXPECT().
			Release(ctx, gomock.Any(), "int_1").
			DoAndReturn(func(_ context.Context, o order.Order, _ string) error {
				assert.Equal(t, order.StateCanceled, o.State)
				return nil
			}).
			Times(1)

		// when
		err := NewFailHandler(repo, releaser).Execute(ctx, data)

		// then
		require.NoError(t, err)
		stored := repo.order(t, "ord_1")
		assert.Equal(t, order.StateCanceled, stored.State)
		assert.False(t, stored.InProcess)
		require.Len(t, repo.auths, 1)
		assert.NotNil(t, repo.auths[0].ReleasedAt)
	})

	t.Run("final order is not released twice", func(t *testing.T) {
		// given
		repo := newMemRepo()
		o := pendingOrder("ord_1", "30")
		o.State = order.StateCanceled
		repo.addOrder(o, "int_1")
		releaser := NewMockReleaser(gomock.NewController(t))

		// when
		err := NewFailHandler(repo, releaser).Execute(ctx, data)

		// then
		require.NoError(t, err)
	})

	t.Run("late failure after a refund leaves the completed order alone", func(t *testing.T) {
		// given
		repo := newMemRepo()
		o := invoicedOrder("ord_1", "50")
		o.State = order.StateComplete
		repo.addOrder(o, "int_1")
		releaser := NewMockReleaser(gomock.NewController(t))
		refund := json.RawMessage(`{"payment_intent_id":"int_1","refund_id":"rfd_1","refunded_amount":10}`)
		require.NoError(t, NewRefundHandler(repo).Execute(ctx, refund))

		// when
		err := NewFailHandler(repo, releaser).Execute(ctx, data)

		// then
		require.NoError(t, err)
		stored := repo.order(t, "ord_1")
		assert.Equal(t, order.StateComplete, stored.State)
		assertAmount(t, "10", stored.TotalRefunded)
	})

	t.Run("release failure keeps the order open", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(pendingOrder("ord_1", "30"), "int_1")
		releaseErr := errors.New("inventory service unavailable")
		releaser := NewMockReleaser(gomock.NewController(t))
		releaser.EXPECT().Release(ctx, gomock.Any(), "int_1").Return(releaseErr)

		// when
		err := NewFailHandler(repo, releaser).Execute(ctx, data)

		// then
		require.ErrorIs(t, err, releaseErr)
		assert.Equal(t, order.StatePendingPayment, repo.order(t, "ord_1").State)
	})

	t.Run("unknown payment intent", func(t *testing.T) {
		releaser := NewMockReleaser(gomock.NewController(t))

		err := NewFailHandler(newMemRepo(), releaser).Execute(ctx, data)

		assert.True(t, IsOrderNotFound(err))
	})
}

func TestDisputeHandler_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("flags the order once per dispute", func(t *testing.T) {
		// given
		repo := newMemRepo()
		repo.addOrder(invoicedOrder("ord_1", "80"), "int_1")
		handler := NewDisputeHandler(repo)
		data := json.RawMessage(`{"id":"dsp_1","payment_intent_id":"int_1","amount":80,"currency":"USD","reason":{"type":"fraudulent","message":"card stolen"}}`)

		// when
		require.NoError(t, handler.Execute(ctx, data))
		require.NoError(t, handler.Execute(ctx, data))

		// then
		require.Len(t, repo.notes, 1)
		note := repo.notes[0]
		assert.Equal(t, order.NoteDispute, note.Kind)
		assert.Equal(t, "dispute:dsp_1", note.SourceRef)
		assert.Equal(t, "Dispute dsp_1 opened by the processor for 80 USD. Reason: fraudulent card stolen", note.Body)

		o := repo.order(t, "ord_1")
		assert.True(t, o.UnderReview)
		assertAmount(t, "80", o.TotalPaid)
		assert.True(t, o.TotalRefunded.IsZero())
		assert.Equal(t, order.StateInvoiced, o.State)
	})

	t.Run("second dispute adds a second note", func(t *testing.T) {
		repo := newMemRepo()
		repo.addOrder(invoicedOrder("ord_1", "80"), "int_1")
		handler := NewDisputeHandler(repo)

		require.NoError(t, handler.Execute(ctx, json.RawMessage(`{"id":"dsp_1","payment_intent_id":"int_1","reason":"duplicate"}`)))
		require.NoError(t, handler.Execute(ctx, json.RawMessage(`{"id":"dsp_2","payment_intent_id":"int_1"}`)))

		require.Len(t, repo.notes, 2)
		assert.Equal(t, "Dispute dsp_1 opened by the processor. Reason: duplicate", repo.notes[0].Body)
		assert.Equal(t, "Dispute dsp_2 opened by the processor", repo.notes[1].Body)
	})

	t.Run("dispute without id", func(t *testing.T) {
		repo := newMemRepo()

		err := NewDisputeHandler(repo).Execute(ctx, json.RawMessage(`{"payment_intent_id":"int_1"}`))

		assert.True(t, IsValidationError(err))
	})
}
