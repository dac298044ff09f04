package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func paymentIntentEngine(repo paymentintent.Repo) *gin.Engine {
	h := NewPaymentIntentHandler(paymentintent.NewService(repo))
	engine := gin.New()
	engine.POST("/payment-intents", h.Register)
	engine.GET("/payment-intents/:intent_id", h.Get)
	return engine
}

func TestPaymentIntentHandler_Register(t *testing.T) {
	const body = `{"payment_intent_id":"int_1","order_id":"ord_1","currency":"usd","amount":"50.00"}`

	testCases := []struct {
		name           string
		stored         paymentintent.PaymentIntent
		repoErr        error
		expectedStatus int
	}{
		{name: "registered", stored: paymentintent.PaymentIntent{ID: "int_1", OrderID: "ord_1"}, expectedStatus: http.StatusCreated},
		{name: "linked to another order", stored: paymentintent.PaymentIntent{ID: "int_1", OrderID: "ord_2"}, expectedStatus: http.StatusConflict},
		{name: "unknown order", repoErr: order.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			repo := paymentintent.NewMockRepo(gomock.NewController(t))
			repo.EXPECT().
				Register(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, pi paymentintent.PaymentIntent) (paymentintent.PaymentIntent, error) {
					assert.Equal(t, "USD", pi.Currency)
					assert.True(t, decimal.RequireFromString("50").Equal(pi.Amount))
					return tc.stored, tc.repoErr
				})

			// when
			w := serve(paymentIntentEngine(repo), http.MethodPost, "/payment-intents", jsonBody(body), nil)

			// then
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}

	for name, invalid := range map[string]string{
		"not json":        `{`,
		"missing order":   `{"payment_intent_id":"int_1","currency":"USD","amount":1}`,
		"zero amount":     `{"payment_intent_id":"int_1","order_id":"ord_1","currency":"USD","amount":0}`,
		"currency length": `{"payment_intent_id":"int_1","order_id":"ord_1","currency":"US","amount":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := paymentintent.NewMockRepo(gomock.NewController(t))

			w := serve(paymentIntentEngine(repo), http.MethodPost, "/payment-intents", jsonBody(invalid), nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPaymentIntentHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := paymentintent.NewMockRepo(gomock.NewController(t))
		repo.EXPECT().Get(gomock.Any(), "int_1").Return(&paymentintent.PaymentIntent{
			ID: "int_1", OrderID: "ord_1", Currency: "USD", Amount: decimal.RequireFromString("50"), CreatedAt: time.Now(),
		}, nil)

		w := serve(paymentIntentEngine(repo), http.MethodGet, "/payment-intents/int_1", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ord_1", body["order_id"])
		assert.Equal(t, "50", body["amount"])
	})

	t.Run("not registered", func(t *testing.T) {
		repo := paymentintent.NewMockRepo(gomock.NewController(t))
		repo.EXPECT().Get(gomock.Any(), "int_404").Return(nil, nil)

		w := serve(paymentIntentEngine(repo), http.MethodGet, "/payment-intents/int_404", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
