package handlers

import (
	"context"
	"net/http"
	"testing"

	"AirwallexPayments/internal/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderEngine(repo order.OrderRepo) *gin.Engine {
	h := NewOrderHandler(order.NewOrderService(repo))
	engine := gin.New()
	engine.GET("/orders/:order_id", h.Get)
	return engine
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("order with its documents", func(t *testing.T) {
		// given
		ctrl := gomock.NewController(t)
		repo := order.NewMockOrderRepo(ctrl)
		tx := order.NewMockTxOrderRepo(ctrl)
		repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(order.TxOrderRepo) error) error { return fn(tx) })
		tx.EXPECT().GetOrder(gomock.Any(), "ord_1").Return(&order.Order{
			ID: "ord_1", GrandTotal: decimal.RequireFromString("50"), TotalPaid: decimal.RequireFromString("50"), State: order.StateInvoiced,
		}, nil)
		tx.EXPECT().ListInvoices(gomock.Any(), "ord_1").Return([]order.Invoice{{ID: "inv_1", OrderID: "ord_1", TransactionID: "int_1"}}, nil)
		tx.EXPECT().ListCreditMemos(gomock.Any(), "ord_1").Return([]order.CreditMemo{}, nil)
		tx.EXPECT().ListAuthorizations(gomock.Any(), "ord_1").Return([]order.Authorization{}, nil)
		tx.EXPECT().ListNotes(gomock.Any(), "ord_1").Return([]order.Note{}, nil)

		// when
		w := serve(orderEngine(repo), http.MethodGet, "/orders/ord_1", nil, nil)

		// then
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "invoiced", body["state"])
		assert.Len(t, body["invoices"], 1)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := order.NewMockOrderRepo(ctrl)
		tx := order.NewMockTxOrderRepo(ctrl)
		repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(order.TxOrderRepo) error) error { return fn(tx) })
		tx.EXPECT().GetOrder(gomock.Any(), "ord_404").Return(nil, order.ErrNotFound)

		w := serve(orderEngine(repo), http.MethodGet, "/orders/ord_404", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
