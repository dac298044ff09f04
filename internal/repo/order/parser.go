package order_repo

import (
	"fmt"

	"AirwallexPayments/internal/domain/order"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount in database: %w", err)
	}
	return d, nil
}

func parseOrderRow(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var grandTotal, totalPaid, totalRefunded, rawState string
	err := row.Scan(&o.ID, &o.Currency, &grandTotal, &totalPaid, &totalRefunded,
		&rawState, &o.InProcess, &o.CustomerNoteNotify, &o.UnderReview, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	state, err := order.NewState(rawState)
	if err != nil {
		return nil, fmt.Errorf("invalid state in database: %w", err)
	}
	o.State = state

	if o.GrandTotal, err = parseAmount(grandTotal); err != nil {
		return nil, err
	}
	if o.TotalPaid, err = parseAmount(totalPaid); err != nil {
		return nil, err
	}
	if o.TotalRefunded, err = parseAmount(totalRefunded); err != nil {
		return nil, err
	}
	return &o, nil
}

func parseInvoiceRows(rows pgx.Rows) ([]order.Invoice, error) {
	invoices := make([]order.Invoice, 0)
	for rows.Next() {
		var inv order.Invoice
		var amount, mode string
		if err := rows.Scan(&inv.ID, &inv.OrderID, &inv.TransactionID, &amount, &mode, &inv.CustomerNotified, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		var err error
		if inv.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		inv.CaptureMode = order.CaptureMode(mode)
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return invoices, nil
}

func parseCreditMemoRows(rows pgx.Rows) ([]order.CreditMemo, error) {
	memos := make([]order.CreditMemo, 0)
	for rows.Next() {
		var m order.CreditMemo
		var amount string
		if err := rows.Scan(&m.ID, &m.OrderID, &m.PaymentIntentID, &m.RefundID, &amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit memo row: %w", err)
		}
		var err error
		if m.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit memo rows: %w", err)
	}
	return memos, nil
}

func parseAuthorizationRows(rows pgx.Rows) ([]order.Authorization, error) {
	auths := make([]order.Authorization, 0)
	for rows.Next() {
		var a order.Authorization
		var amount string
		if err := rows.Scan(&a.ID, &a.OrderID, &a.PaymentIntentID, &amount, &a.ReleasedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan authorization row: %w", err)
		}
		var err error
		if a.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		auths = append(auths, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authorization rows: %w", err)
	}
	return auths, nil
}

func parseNoteRows(rows pgx.Rows) ([]order.Note, error) {
	notes := make([]order.Note, 0)
	for rows.Next() {
		var n order.Note
		var kind string
		if err := rows.Scan(&n.ID, &n.OrderID, &kind, &n.SourceRef, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		n.Kind = order.NoteKind(kind)
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}
	return notes, nil
}
