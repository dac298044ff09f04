package webhook

import (
	"context"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"AirwallexPayments/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// memRepo is an in-memory order store. InTransaction serializes callers the way
// a row lock would and restores the previous state when fn fails.
type memRepo struct {
	mu       sync.Mutex
	orders   map[string]order.Order
	intents  map[string]string
	invoices []order.Invoice
	memos    []order.CreditMemo
	auths    []order.Authorization
	notes    []order.Note
	errOn    map[string]error
	txCount  int
}

type memSnapshot struct {
	orders   map[string]order.Order
	invoices []order.Invoice
	memos    []order.CreditMemo
	auths    []order.Authorization
	notes    []order.Note
}

func newMemRepo() *memRepo {
	return &memRepo{
		orders:  map[string]order.Order{},
		intents: map[string]string{},
		errOn:   map[string]error{},
	}
}

func (r *memRepo) addOrder(o order.Order, intentIDs ...string) {
	r.orders[o.ID] = o
	for _, id := range intentIDs {
		r.intents[id] = o.ID
	}
}

func (r *memRepo) order(t *testing.T, id string) order.Order {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		t.Fatalf("order %s not stored", id)
	}
	return o
}

func (r *memRepo) fail(method string) error {
	return r.errOn[method]
}

func (r *memRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCount++

	snap := memSnapshot{
		orders:   maps.Clone(r.orders),
		invoices: slices.Clone(r.invoices),
		memos:    slices.Clone(r.memos),
		auths:    slices.Clone(r.auths),
		notes:    slices.Clone(r.notes),
	}
	if err := fn(r); err != nil {
		r.orders, r.invoices, r.memos, r.auths, r.notes = snap.orders, snap.invoices, snap.memos, snap.auths, snap.notes
		return err
	}
	return nil
}

func (r *memRepo) GetOrder(_ context.Context, id string) (*order.Order, error) {
	if err := r.fail("GetOrder"); err != nil {
		return nil, err
	}
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &o, nil
}

func (r *memRepo) LoadOrderByPaymentIntent(_ context.Context, intentID string) (*order.Order, error) {
	if err := r.fail("LoadOrderByPaymentIntent"); err != nil {
		return nil, err
	}
	orderID, ok := r.intents[intentID]
	if !ok {
		return nil, nil
	}
	o := r.orders[orderID]
	return &o, nil
}

func (r *memRepo) UpdateOrder(_ context.Context, o order.Order) error {
	if err := r.fail("UpdateOrder"); err != nil {
		return err
	}
	r.orders[o.ID] = o
	return nil
}

func (r *memRepo) CreateInvoice(_ context.Context, invoice order.Invoice) error {
	if err := r.fail("CreateInvoice"); err != nil {
		return err
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *memRepo) InvoicedAmount(_ context.Context, orderID, transactionID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range r.invoices {
		if inv.OrderID == orderID && inv.TransactionID == transactionID {
			sum = sum.Add(inv.Amount)
		}
	}
	return sum, nil
}

func (r *memRepo) ListInvoices(_ context.Context, orderID string) ([]order.Invoice, error) {
	var out []order.Invoice
	for _, inv := range r.invoices {
		if inv.OrderID == orderID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memRepo) CreateCreditMemo(_ context.Context, memo order.CreditMemo) error {
	if err := r.fail("CreateCreditMemo"); err != nil {
		return err
	}
	r.memos = append(r.memos, memo)
	return nil
}

func (r *memRepo) GetCreditMemoByRefundID(_ context.Context, refundID string) (*order.CreditMemo, error) {
	for _, m := range r.memos {
		if m.RefundID == refundID {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memRepo) ListCreditMemos(_ context.Context, orderID string) ([]order.CreditMemo, error) {
	var out []order.CreditMemo
	for _, m := range r.memos {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memRepo) CreateAuthorization(_ context.Context, auth order.Authorization) error {
	if err := r.fail("CreateAuthorization"); err != nil {
		return err
	}
	r.auths = append(r.auths, auth)
	return nil
}

func (r *memRepo) GetAuthorizationByIntent(_ context.Context, intentID string) (*order.Authorization, error) {
	for _, a := range r.auths {
		if a.PaymentIntentID == intentID {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memRepo) ReleaseAuthorizations(_ context.Context, orderID string, at time.Time) (int64, error) {
	var n int64
	for i := range r.auths {
		if r.auths[i].OrderID == orderID && r.auths[i].ReleasedAt == nil {
			released := at
			r.auths[i].ReleasedAt = &released
			n++
		}
	}
	return n, nil
}

func (r *memRepo) ListAuthorizations(_ context.Context, orderID string) ([]order.Authorization, error) {
	var out []order.Authorization
	for _, a := range r.auths {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) CreateNote(_ context.Context, note order.Note) error {
	if err := r.fail("CreateNote"); err != nil {
		return err
	}
	r.notes = append(r.notes, note)
	return nil
}

func (r *memRepo) HasNote(_ context.Context, orderID, sourceRef string) (bool, error) {
	for _, n := range r.notes {
		if n.OrderID == orderID && n.SourceRef == sourceRef {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ListNotes(_ context.Context, orderID string) ([]order.Note, error) {
	var out []order.Note
	for _, n := range r.notes {
		if n.OrderID == orderID {
			out = append(out, n)
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected amount %s, got %s", expected, actual)
}

func pendingOrder(id, grandTotal string) order.Order {
	now := time.Now().UTC()
	return order.Order{
		ID:                 id,
		Currency:           "USD",
		GrandTotal:         dec(grandTotal),
		TotalPaid:          decimal.Zero,
		TotalRefunded:      decimal.Zero,
		State:              order.StatePendingPayment,
		CustomerNoteNotify: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
